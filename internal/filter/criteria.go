package filter

import (
	"time"

	"github.com/HatemSelim94/NEO/internal/neo"
)

// Options holds the ten optional query criteria. A nil field leaves that
// attribute unconstrained. Minimum bounds match with >=, maximum bounds with
// <=, and Date with calendar-date equality, so the direction of each
// comparison is fixed by the slot rather than chosen by the caller.
type Options struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	MinDistance *float64
	MaxDistance *float64
	MinVelocity *float64
	MaxVelocity *float64
	MinDiameter *float64
	MaxDiameter *float64

	Hazardous *bool
}

// Criteria is the AND-combination of the filters built from one Options
// value. The zero Criteria matches every approach.
type Criteria struct {
	filters []AttributeFilter
}

// Build converts the present Options slots into Criteria.
func Build(opts Options) Criteria {
	var c Criteria
	if opts.Date != nil {
		c.filters = append(c.filters, Date(Eq, *opts.Date))
	}
	if opts.StartDate != nil {
		c.filters = append(c.filters, Date(Ge, *opts.StartDate))
	}
	if opts.EndDate != nil {
		c.filters = append(c.filters, Date(Le, *opts.EndDate))
	}
	if opts.MinDistance != nil {
		c.filters = append(c.filters, Distance(Ge, *opts.MinDistance))
	}
	if opts.MaxDistance != nil {
		c.filters = append(c.filters, Distance(Le, *opts.MaxDistance))
	}
	if opts.MinVelocity != nil {
		c.filters = append(c.filters, Velocity(Ge, *opts.MinVelocity))
	}
	if opts.MaxVelocity != nil {
		c.filters = append(c.filters, Velocity(Le, *opts.MaxVelocity))
	}
	if opts.MinDiameter != nil {
		c.filters = append(c.filters, Diameter(Ge, *opts.MinDiameter))
	}
	if opts.MaxDiameter != nil {
		c.filters = append(c.filters, Diameter(Le, *opts.MaxDiameter))
	}
	if opts.Hazardous != nil {
		c.filters = append(c.filters, Hazardous(*opts.Hazardous))
	}
	return c
}

// Matches reports whether the approach satisfies every present filter.
// Vacuously true when no slot was constrained.
func (c Criteria) Matches(ca *neo.CloseApproach) bool {
	for _, f := range c.filters {
		if !f.Matches(ca) {
			return false
		}
	}
	return true
}

// Len returns the number of constrained slots.
func (c Criteria) Len() int {
	return len(c.filters)
}
