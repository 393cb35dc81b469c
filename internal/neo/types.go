// Package neo defines the record types for near-Earth objects and their
// close approaches to Earth.
//
// A NearEarthObject carries the semantic and physical parameters of one
// astronomical body; a CloseApproach records a single encounter with Earth.
// Both are constructed unlinked by the extract package and cross-referenced
// exactly once by the database package.
package neo

import (
	"fmt"
	"math"
	"time"
)

// TimeLayout is the timestamp format used by the close-approach data set.
// The source data carries minute precision only, no seconds.
const TimeLayout = "2006-Jan-02 15:04"

// NearEarthObject is a single near-Earth object (NEO).
//
// Designation is the unique primary key. Name is the optional IAU name;
// empty means the object is unnamed. Diameter is in kilometers and is NaN
// when unknown — never zero. Approaches is empty until the database links
// the data set.
type NearEarthObject struct {
	Designation string
	Name        string
	Diameter    float64
	Hazardous   bool
	Approaches  []*CloseApproach
}

// Fullname returns the designation, with the name in parentheses when the
// object has one.
func (n *NearEarthObject) Fullname() string {
	if n.Name == "" {
		return n.Designation
	}
	return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
}

func (n *NearEarthObject) String() string {
	hazard := "safe asteroid"
	if n.Hazardous {
		hazard = "potentially hazardous asteroid"
	}
	if math.IsNaN(n.Diameter) {
		return fmt.Sprintf("NEO %s has an unknown diameter and is marked as a %s.", n.Fullname(), hazard)
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and is marked as a %s.", n.Fullname(), n.Diameter, hazard)
}

// CloseApproach is a single close approach to Earth by an NEO.
//
// Designation is the foreign key naming the approaching object; it is only
// meaningful before linking, after which NEO points directly at the object.
// Time is the UTC instant of closest approach, Distance the nominal approach
// distance in astronomical units, and Velocity the relative approach
// velocity in km/s. Unknown distance or velocity is NaN.
type CloseApproach struct {
	Designation string
	Time        time.Time
	Distance    float64
	Velocity    float64
	NEO         *NearEarthObject
}

// TimeStr formats the approach time without the seconds the source data
// never had.
func (c *CloseApproach) TimeStr() string {
	return c.Time.Format(TimeLayout)
}

func (c *CloseApproach) String() string {
	if c.NEO == nil {
		return fmt.Sprintf("At %s, %q approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
			c.TimeStr(), c.Designation, c.Distance, c.Velocity)
	}
	return fmt.Sprintf("At %s, %s approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		c.TimeStr(), c.NEO.Fullname(), c.Distance, c.Velocity)
}
