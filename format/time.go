package format

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned for negative, NaN or infinite time values.
var ErrInvalidTime = errors.New("time must be a finite non-negative number")

// snapTolerance absorbs binary floating point noise when converting to nanoseconds,
// e.g. 0.49704864s * 1e9 landing just below a whole nanosecond.
const snapTolerance = 1e-6

// Component is one (magnitude, unit) element of a decomposed duration.
type Component struct {
	// Value is the whole number of units. It is always integral.
	Value float64
	// Unit is the plural unit name, e.g. "minutes".
	Unit string

	unit timeUnit
}

// TimeConfig holds the rendering options of Time.
type TimeConfig struct {
	// Unit the input is expressed in. Defaults to nanoseconds.
	Unit string
	// Precision is the finest unit rendered. Defaults to nanoseconds.
	Precision string
	// MaxItems caps the number of rendered components. Zero means no cap.
	MaxItems int
	// Short selects abbreviated unit names joined by commas.
	Short bool
}

// TimeOption defines a function type for configuring Time.
type TimeOption func(*TimeConfig)

// WithUnit sets the unit of the input value.
func WithUnit(unit string) TimeOption {
	return func(cfg *TimeConfig) {
		cfg.Unit = unit
	}
}

// WithPrecision sets the finest unit to render.
func WithPrecision(precision string) TimeOption {
	return func(cfg *TimeConfig) {
		cfg.Precision = precision
	}
}

// WithMaxItems caps the number of rendered components.
func WithMaxItems(maxItems int) TimeOption {
	return func(cfg *TimeConfig) {
		cfg.MaxItems = maxItems
	}
}

// WithShort selects the abbreviated rendering, e.g. "1h, 21m".
func WithShort(short bool) TimeOption {
	return func(cfg *TimeConfig) {
		cfg.Short = short
	}
}

// SetDefaults fills empty unit names.
func (c *TimeConfig) SetDefaults() {
	if c.Unit == "" {
		c.Unit = "nanoseconds"
	}

	if c.Precision == "" {
		c.Precision = "nanoseconds"
	}
}

// Time renders t, expressed in the configured unit, as a human readable duration:
//
//	Time(4865268458795)                          // "1 hour, 21 minutes, 5 seconds, 268 milliseconds, 458 microseconds and 795 nanoseconds"
//	Time(4865268458795, WithPrecision("minutes")) // "1 hour and 21 minutes"
//	Time(78, WithUnit("seconds"))                 // "1 minute and 18 seconds"
//
// Values smaller than one precision unit are rendered with up to three decimals.
func Time(t float64, opts ...TimeOption) (string, error) {
	cfg := newTimeConfig(opts)

	d, err := decompose(t, cfg)
	if err != nil {
		return "", err
	}

	return d.render(cfg.Short), nil
}

// Seconds renders a number of seconds down to the second.
func Seconds(t float64, opts ...TimeOption) (string, error) {
	return Time(t, append(slices.Clip(opts), WithUnit("seconds"), WithPrecision("seconds"))...)
}

// Duration renders d. The unit option is ignored.
func Duration(d time.Duration, opts ...TimeOption) (string, error) {
	return Time(float64(d), append(slices.Clip(opts), WithUnit("nanoseconds"))...)
}

// Decompose returns the components Time would render, coarsest first.
// It returns no component for zero or for values below one precision unit.
func Decompose(t float64, opts ...TimeOption) ([]Component, error) {
	d, err := decompose(t, newTimeConfig(opts))
	if err != nil {
		return nil, err
	}

	return d.components, nil
}

type decomposition struct {
	components []Component
	unit       timeUnit
	precision  timeUnit
	// remainder is the whole value expressed in precision units.
	remainder float64
	zero      bool
}

func newTimeConfig(opts []TimeOption) TimeConfig {
	var cfg TimeConfig

	for _, apply := range opts {
		apply(&cfg)
	}

	cfg.SetDefaults()

	return cfg
}

func decompose(t float64, cfg TimeConfig) (decomposition, error) {
	unitIdx, err := unitIndex(cfg.Unit)
	if err != nil {
		return decomposition{}, fmt.Errorf("unit: %w", err)
	}

	precisionIdx, err := unitIndex(cfg.Precision)
	if err != nil {
		return decomposition{}, fmt.Errorf("precision: %w", err)
	}

	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return decomposition{}, fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}

	d := decomposition{
		unit:      units[unitIdx],
		precision: units[precisionIdx],
	}

	if t == 0 {
		d.zero = true

		return d, nil
	}

	total := snap(t * d.unit.ns)
	remaining := total

	for _, u := range units[:precisionIdx+1] {
		quotient := math.Floor(remaining / u.ns)
		remaining = math.Max(remaining-float64(quotient*u.ns), 0)

		if quotient > 0 {
			d.components = append(d.components, Component{Value: quotient, Unit: u.name, unit: u})
		}
	}

	d.remainder = total / d.precision.ns

	if cfg.MaxItems > 0 && len(d.components) > cfg.MaxItems {
		d.components = d.components[:cfg.MaxItems]
	}

	return d, nil
}

func (d decomposition) render(short bool) string {
	if d.zero {
		return renderAmount("0", d.unit.name, d.unit.short, short)
	}

	if len(d.components) == 0 {
		value := trimDecimals(strconv.FormatFloat(d.remainder, 'f', 3, 64))

		return renderAmount(value, d.precision.name, d.precision.short, short)
	}

	parts := make([]string, len(d.components))

	for i, c := range d.components {
		name := c.unit.name
		if c.Value == 1 {
			name = c.unit.singular
		}

		parts[i] = renderAmount(strconv.FormatFloat(c.Value, 'f', 0, 64), name, c.unit.short, short)
	}

	if short {
		return strings.Join(parts, ", ")
	}

	return AndJoin(parts)
}

func renderAmount(value, name, abbreviation string, short bool) string {
	if short {
		return value + abbreviation
	}

	return value + " " + name
}

// trimDecimals strips trailing zeros, then a trailing decimal point.
func trimDecimals(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < snapTolerance {
		return r
	}

	return v
}
