package extract

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"
)

var testLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

const neoCSV = `id,pdes,name,pha,diameter
a0000433,433,Eros,N,16.84
a0001862,1862,Apollo,Y,1.5
bP10PK9,2010 PK9,,Y,
a0000001,1,Ceres,N,bogus
broken,,Nameless,N,1.0
`

// TestParseNEOs verifies field mapping, the hazard token, and that unknown
// or malformed diameters decode to NaN rather than zero.
func TestParseNEOs(t *testing.T) {
	neos, err := ParseNEOs(strings.NewReader(neoCSV), testLogger)
	if err != nil {
		t.Fatalf("ParseNEOs failed: %v", err)
	}

	// The row without a designation is skipped.
	if len(neos) != 4 {
		t.Fatalf("expected 4 NEOs, got %d", len(neos))
	}

	eros := neos[0]
	if eros.Designation != "433" || eros.Name != "Eros" {
		t.Errorf("unexpected first record: %+v", eros)
	}
	if eros.Hazardous {
		t.Error("pha=N must map to not hazardous")
	}
	if eros.Diameter != 16.84 {
		t.Errorf("diameter = %v, want 16.84", eros.Diameter)
	}

	if !neos[1].Hazardous {
		t.Error("pha=Y must map to hazardous")
	}

	unnamed := neos[2]
	if unnamed.Name != "" {
		t.Errorf("missing name should stay empty, got %q", unnamed.Name)
	}
	if !math.IsNaN(unnamed.Diameter) {
		t.Errorf("missing diameter should be NaN, got %v", unnamed.Diameter)
	}

	if !math.IsNaN(neos[3].Diameter) {
		t.Errorf("malformed diameter should be NaN, got %v", neos[3].Diameter)
	}
}

func TestParseNEOsMissingDesignationColumn(t *testing.T) {
	_, err := ParseNEOs(strings.NewReader("id,name\n1,Eros\n"), testLogger)
	if err == nil {
		t.Fatal("expected error for header without pdes column, got nil")
	}
}

const cadJSON = `{
  "fields": ["des", "cd", "dist", "v_rel"],
  "data": [
    ["433", "2020-Jan-01 12:30", "0.15", "5.26"],
    ["2010 PK9", "2020-Jul-29 03:14", null, 12.19],
    ["433", "not a time", "0.25", "4.42"],
    ["433", "2021-Mar-15 00:00", "oops", "7.39"]
  ]
}`

// TestParseApproaches verifies the fields/data zip, time parsing, and NaN
// decoding for missing and malformed numerics.
func TestParseApproaches(t *testing.T) {
	approaches, err := ParseApproaches(strings.NewReader(cadJSON), testLogger)
	if err != nil {
		t.Fatalf("ParseApproaches failed: %v", err)
	}

	// The row with an unparseable timestamp is skipped.
	if len(approaches) != 3 {
		t.Fatalf("expected 3 approaches, got %d", len(approaches))
	}

	first := approaches[0]
	want := time.Date(2020, time.January, 1, 12, 30, 0, 0, time.UTC)
	if !first.Time.Equal(want) {
		t.Errorf("time = %v, want %v", first.Time, want)
	}
	if first.Designation != "433" || first.Distance != 0.15 || first.Velocity != 5.26 {
		t.Errorf("unexpected first record: %+v", first)
	}

	second := approaches[1]
	if !math.IsNaN(second.Distance) {
		t.Errorf("null distance should be NaN, got %v", second.Distance)
	}
	// Numeric JSON values decode the same as string-wrapped ones.
	if second.Velocity != 12.19 {
		t.Errorf("velocity = %v, want 12.19", second.Velocity)
	}

	if !math.IsNaN(approaches[2].Distance) {
		t.Errorf("malformed distance should be NaN, got %v", approaches[2].Distance)
	}
}

func TestParseApproachesMissingDesignationField(t *testing.T) {
	_, err := ParseApproaches(strings.NewReader(`{"fields": ["cd"], "data": []}`), testLogger)
	if err == nil {
		t.Fatal("expected error for fields without des, got nil")
	}
}

func TestParseApproachesBadJSON(t *testing.T) {
	_, err := ParseApproaches(strings.NewReader("{"), testLogger)
	if err == nil {
		t.Fatal("expected error for truncated JSON, got nil")
	}
}
