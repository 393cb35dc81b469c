// Package output serializes close-approach result streams to CSV and JSON.
//
// Both shapes flatten each approach together with its linked NEO: formatted
// timestamp, distance, velocity, and the object's designation, name,
// diameter, and hazard flag. CSV is one flat row per approach; JSON nests
// the object fields under a "neo" key. Unknown numerics (NaN) render as
// "NaN" text in CSV and as null in JSON, since encoding/json has no NaN.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/HatemSelim94/NEO/internal/neo"
)

// CSV column order, matching the canonical output of the data set.
var csvHeader = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// WriteCSV writes the result stream to w as CSV, header first. The stream is
// consumed exactly once, one row per element.
func WriteCSV(w io.Writer, results iter.Seq[*neo.CloseApproach]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for ca := range results {
		row := []string{
			ca.TimeStr(),
			formatFloat(ca.Distance),
			formatFloat(ca.Velocity),
			ca.NEO.Designation,
			ca.NEO.Name,
			formatFloat(ca.NEO.Diameter),
			strconv.FormatBool(ca.NEO.Hazardous),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV output: %w", err)
	}
	return nil
}

// jsonRow is the nested output shape for one close approach.
type jsonRow struct {
	DatetimeUTC string   `json:"datetime_utc"`
	DistanceAU  *float64 `json:"distance_au"`
	VelocityKmS *float64 `json:"velocity_km_s"`
	NEO         jsonNEO  `json:"neo"`
}

type jsonNEO struct {
	Designation string   `json:"designation"`
	Name        *string  `json:"name"`
	DiameterKm  *float64 `json:"diameter_km"`
	Hazardous   bool     `json:"potentially_hazardous"`
}

// WriteJSON writes the result stream to w as an indented JSON array of
// nested rows. The array is materialized before encoding; callers bound
// unbounded streams with stream.Limit first.
func WriteJSON(w io.Writer, results iter.Seq[*neo.CloseApproach]) error {
	rows := []jsonRow{}
	for ca := range results {
		rows = append(rows, jsonRow{
			DatetimeUTC: ca.TimeStr(),
			DistanceAU:  nullableFloat(ca.Distance),
			VelocityKmS: nullableFloat(ca.Velocity),
			NEO: jsonNEO{
				Designation: ca.NEO.Designation,
				Name:        nullableString(ca.NEO.Name),
				DiameterKm:  nullableFloat(ca.NEO.Diameter),
				Hazardous:   ca.NEO.Hazardous,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func nullableFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
