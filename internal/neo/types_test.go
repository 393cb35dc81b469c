package neo

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullname(t *testing.T) {
	named := &NearEarthObject{Designation: "433", Name: "Eros"}
	assert.Equal(t, "433 (Eros)", named.Fullname())

	unnamed := &NearEarthObject{Designation: "2010 PK9"}
	assert.Equal(t, "2010 PK9", unnamed.Fullname())
}

func TestNearEarthObjectString(t *testing.T) {
	known := &NearEarthObject{Designation: "433", Name: "Eros", Diameter: 16.84}
	assert.Equal(t,
		"NEO 433 (Eros) has a diameter of 16.840 km and is marked as a safe asteroid.",
		known.String())

	unknown := &NearEarthObject{Designation: "2010 PK9", Diameter: math.NaN(), Hazardous: true}
	assert.Equal(t,
		"NEO 2010 PK9 has an unknown diameter and is marked as a potentially hazardous asteroid.",
		unknown.String())
}

func TestTimeStrDropsSeconds(t *testing.T) {
	ca := &CloseApproach{Time: time.Date(2020, time.January, 1, 9, 5, 59, 0, time.UTC)}
	assert.Equal(t, "2020-Jan-01 09:05", ca.TimeStr())
}

func TestTimeLayoutRoundTrips(t *testing.T) {
	parsed, err := time.ParseInLocation(TimeLayout, "2020-Jul-29 03:14", time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.July, 29, 3, 14, 0, 0, time.UTC), parsed)
}

func TestCloseApproachString(t *testing.T) {
	obj := &NearEarthObject{Designation: "433", Name: "Eros"}
	ca := &CloseApproach{
		Designation: "433",
		Time:        time.Date(2025, time.January, 1, 12, 30, 0, 0, time.UTC),
		Distance:    0.05,
		Velocity:    5.92,
		NEO:         obj,
	}
	assert.Equal(t,
		"At 2025-Jan-01 12:30, 433 (Eros) approaches Earth at a distance of 0.05 au and a velocity of 5.92 km/s.",
		ca.String())

	unlinked := &CloseApproach{Designation: "433", Time: ca.Time, Distance: 0.05, Velocity: 5.92}
	assert.Contains(t, unlinked.String(), `"433"`)
}
