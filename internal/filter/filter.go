// Package filter builds composable predicates over close approaches.
//
// An AttributeFilter compares one attribute of a close approach (or its
// linked NEO) against a reference value. Criteria AND-combines the filters
// built from a caller's Options; a slot left nil in Options constrains
// nothing. The kind set is closed: extending it means adding a Kind constant
// and its accessor arm in Matches.
package filter

import (
	"errors"
	"fmt"
	"time"

	"github.com/HatemSelim94/NEO/internal/neo"
)

// ErrUnsupportedCriterion reports a filter evaluated with a kind outside the
// closed set. It is a programming error: every filter built through this
// package carries a valid kind, so the panic is unreachable from Build.
var ErrUnsupportedCriterion = errors.New("unsupported filter criterion")

// Comparator is the binary comparison a filter applies between the extracted
// attribute (left) and the reference value (right).
type Comparator int

const (
	Eq Comparator = iota // attribute == reference
	Le                   // attribute <= reference
	Ge                   // attribute >= reference
)

func (op Comparator) String() string {
	switch op {
	case Eq:
		return "=="
	case Le:
		return "<="
	case Ge:
		return ">="
	}
	return fmt.Sprintf("Comparator(%d)", int(op))
}

// Kind identifies which attribute of a close approach a filter inspects.
type Kind int

const (
	KindDate      Kind = iota + 1 // calendar date of the approach time
	KindDistance                  // nominal approach distance
	KindVelocity                  // relative approach velocity
	KindDiameter                  // linked NEO's diameter
	KindHazardous                 // linked NEO's hazard flag
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindDistance:
		return "distance"
	case KindVelocity:
		return "velocity"
	case KindDiameter:
		return "diameter"
	case KindHazardous:
		return "hazardous"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// AttributeFilter is a single-attribute predicate: it extracts the attribute
// named by Kind from a close approach and compares it to the reference value
// with Op. Construct filters through Date, Distance, Velocity, Diameter, or
// Hazardous.
type AttributeFilter struct {
	Kind Kind
	Op   Comparator

	date time.Time
	num  float64
	flag bool
}

// Date builds a filter on the calendar date of the approach time. The
// time-of-day of both sides is discarded before comparing.
func Date(op Comparator, value time.Time) AttributeFilter {
	return AttributeFilter{Kind: KindDate, Op: op, date: dateOnly(value)}
}

// Distance builds a filter on the nominal approach distance.
func Distance(op Comparator, value float64) AttributeFilter {
	return AttributeFilter{Kind: KindDistance, Op: op, num: value}
}

// Velocity builds a filter on the relative approach velocity.
func Velocity(op Comparator, value float64) AttributeFilter {
	return AttributeFilter{Kind: KindVelocity, Op: op, num: value}
}

// Diameter builds a filter on the linked NEO's diameter. Evaluating it
// requires a linked approach; the database guarantees that after
// construction.
func Diameter(op Comparator, value float64) AttributeFilter {
	return AttributeFilter{Kind: KindDiameter, Op: op, num: value}
}

// Hazardous builds a filter on the linked NEO's hazard flag.
func Hazardous(value bool) AttributeFilter {
	return AttributeFilter{Kind: KindHazardous, Op: Eq, flag: value}
}

// Matches reports whether the approach satisfies this filter. NaN attributes
// fail every comparison, so approaches with unknown distance, velocity, or
// diameter never match a numeric constraint. Panics with
// ErrUnsupportedCriterion on a kind outside the closed set.
func (f AttributeFilter) Matches(ca *neo.CloseApproach) bool {
	switch f.Kind {
	case KindDate:
		return compareDate(f.Op, dateOnly(ca.Time), f.date)
	case KindDistance:
		return compareFloat(f.Op, ca.Distance, f.num)
	case KindVelocity:
		return compareFloat(f.Op, ca.Velocity, f.num)
	case KindDiameter:
		return compareFloat(f.Op, ca.NEO.Diameter, f.num)
	case KindHazardous:
		return compareBool(f.Op, ca.NEO.Hazardous, f.flag)
	}
	panic(ErrUnsupportedCriterion)
}

func (f AttributeFilter) String() string {
	switch f.Kind {
	case KindDate:
		return fmt.Sprintf("%s %s %s", f.Kind, f.Op, f.date.Format("2006-01-02"))
	case KindHazardous:
		return fmt.Sprintf("%s %s %t", f.Kind, f.Op, f.flag)
	default:
		return fmt.Sprintf("%s %s %v", f.Kind, f.Op, f.num)
	}
}

// dateOnly truncates a timestamp to midnight UTC of its calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func compareDate(op Comparator, got, want time.Time) bool {
	switch op {
	case Eq:
		return got.Equal(want)
	case Le:
		return !got.After(want)
	case Ge:
		return !got.Before(want)
	}
	panic(ErrUnsupportedCriterion)
}

// compareFloat is false for NaN on either side under every operator, which
// is exactly the IEEE 754 behavior the comparisons below inherit.
func compareFloat(op Comparator, got, want float64) bool {
	switch op {
	case Eq:
		return got == want
	case Le:
		return got <= want
	case Ge:
		return got >= want
	}
	panic(ErrUnsupportedCriterion)
}

func compareBool(op Comparator, got, want bool) bool {
	b2f := func(b bool) float64 {
		if b {
			return 1
		}
		return 0
	}
	return compareFloat(op, b2f(got), b2f(want))
}
