// Package extract decodes the two NASA source files into unlinked records.
//
// NEOs come from a CSV export of the small-body database; close approaches
// come from the close-approach API's JSON shape, a "fields" list zipped
// against row arrays. Unknown or malformed numeric fields decode to NaN so
// that downstream comparisons treat them as "present but unknown" — never
// zero. Records missing their key fields are skipped with a warning.
package extract

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/HatemSelim94/NEO/internal/neo"
)

// Source field names in the NEO CSV.
const (
	colDesignation = "pdes"
	colName        = "name"
	colDiameter    = "diameter"
	colHazardous   = "pha"
)

// Source field names in the close-approach JSON.
const (
	fieldDesignation = "des"
	fieldTime        = "cd"
	fieldDistance    = "dist"
	fieldVelocity    = "v_rel"
)

// LoadNEOs reads near-Earth object records from the CSV file at path.
func LoadNEOs(path string, logger *slog.Logger) ([]*neo.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening NEO data: %w", err)
	}
	defer f.Close()
	return ParseNEOs(f, logger)
}

// ParseNEOs decodes NEO records from CSV data on r. The first row is the
// header; only the designation, name, diameter, and hazard columns are
// consumed, whatever else the export carries.
func ParseNEOs(r io.Reader, logger *slog.Logger) ([]*neo.NearEarthObject, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading NEO header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	if _, ok := cols[colDesignation]; !ok {
		return nil, fmt.Errorf("NEO header missing %q column", colDesignation)
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var neos []*neo.NearEarthObject
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading NEO data: %w", err)
		}

		designation := cell(row, colDesignation)
		if designation == "" {
			logger.Warn("skipping NEO row without designation", "line", line)
			continue
		}

		neos = append(neos, &neo.NearEarthObject{
			Designation: designation,
			Name:        cell(row, colName),
			Diameter:    parseFloat(cell(row, colDiameter), logger, "diameter", designation),
			Hazardous:   cell(row, colHazardous) == "Y",
		})
	}

	logger.Info("loaded NEO data", "count", len(neos))
	return neos, nil
}

// LoadApproaches reads close-approach records from the JSON file at path.
func LoadApproaches(path string, logger *slog.Logger) ([]*neo.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening close-approach data: %w", err)
	}
	defer f.Close()
	return ParseApproaches(f, logger)
}

// ParseApproaches decodes close-approach records from JSON data on r.
func ParseApproaches(r io.Reader, logger *slog.Logger) ([]*neo.CloseApproach, error) {
	var doc struct {
		Fields []string `json:"fields"`
		Data   [][]any  `json:"data"`
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding close-approach data: %w", err)
	}

	idx := make(map[string]int, len(doc.Fields))
	for i, name := range doc.Fields {
		idx[name] = i
	}
	if _, ok := idx[fieldDesignation]; !ok {
		return nil, fmt.Errorf("close-approach fields missing %q", fieldDesignation)
	}

	cell := func(row []any, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) || row[i] == nil {
			return ""
		}
		return fmt.Sprint(row[i])
	}

	var approaches []*neo.CloseApproach
	for i, row := range doc.Data {
		designation := cell(row, fieldDesignation)
		if designation == "" {
			logger.Warn("skipping close approach without designation", "row", i)
			continue
		}

		ts, err := time.ParseInLocation(neo.TimeLayout, cell(row, fieldTime), time.UTC)
		if err != nil {
			logger.Warn("skipping close approach with malformed time", "row", i, "designation", designation, "error", err)
			continue
		}

		approaches = append(approaches, &neo.CloseApproach{
			Designation: designation,
			Time:        ts,
			Distance:    parseFloat(cell(row, fieldDistance), logger, "distance", designation),
			Velocity:    parseFloat(cell(row, fieldVelocity), logger, "velocity", designation),
		})
	}

	logger.Info("loaded close-approach data", "count", len(approaches))
	return approaches, nil
}

// parseFloat decodes a numeric source field. Empty means unknown; a
// malformed value is logged and also treated as unknown. Both map to NaN,
// which no filter comparison ever satisfies.
func parseFloat(s string, logger *slog.Logger, field, designation string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logger.Warn("malformed numeric field", "field", field, "designation", designation, "value", s)
		return math.NaN()
	}
	return v
}
