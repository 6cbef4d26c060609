package format

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownUnit is returned when a unit or precision name is not in the unit table.
var ErrUnknownUnit = errors.New("unknown time unit")

type timeUnit struct {
	name     string
	singular string
	short    string
	ns       float64
}

const (
	nanosecond  = 1.0
	microsecond = 1000 * nanosecond
	millisecond = 1000 * microsecond
	second      = 1000 * millisecond
	minute      = 60 * second
	hour        = 60 * minute
	day         = 24 * hour
	week        = 7 * day
	year        = 365 * day
)

// units is ordered from the coarsest to the finest unit.
//
//nolint:gochecknoglobals // fixed conversion table.
var units = []timeUnit{
	{name: "years", singular: "year", short: "y", ns: year},
	{name: "weeks", singular: "week", short: "w", ns: week},
	{name: "days", singular: "day", short: "d", ns: day},
	{name: "hours", singular: "hour", short: "h", ns: hour},
	{name: "minutes", singular: "minute", short: "m", ns: minute},
	{name: "seconds", singular: "second", short: "s", ns: second},
	{name: "milliseconds", singular: "millisecond", short: "ms", ns: millisecond},
	{name: "microseconds", singular: "microsecond", short: "µs", ns: microsecond},
	{name: "nanoseconds", singular: "nanosecond", short: "ns", ns: nanosecond},
}

// UnitNames returns the recognized unit names, coarsest first.
func UnitNames() []string {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.name
	}

	return names
}

// unitIndex resolves a unit name, tolerating case, a missing trailing "s"
// and the short abbreviations. The micro sign and the Greek mu are treated alike.
func unitIndex(name string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))

	for i, u := range units {
		switch normalized {
		case u.name, u.singular, norm.NFKC.String(u.short):
			return i, nil
		}
	}

	if normalized == "us" {
		return len(units) - 2, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}
