package pathget

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidStep is returned when a path step is neither a string nor an integer.
var ErrInvalidStep = errors.New("invalid path step")

// Step is a single path element: either a string key or an integer index.
type Step struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a step addressing a mapping key or a field name.
func Key(key string) Step {
	return Step{key: key}
}

// Index returns a step addressing a sequence position. Negative values count from the end.
func Index(index int) Step {
	return Step{index: index, isIndex: true}
}

// IsIndex reports whether the step is an integer index.
func (s Step) IsIndex() bool {
	return s.isIndex
}

// Key returns the string key of the step. It is empty for index steps.
func (s Step) Key() string {
	return s.key
}

// Index returns the integer index of the step. It is zero for key steps.
func (s Step) Index() int {
	return s.index
}

// Value returns the step as a string or an int.
func (s Step) Value() any {
	if s.isIndex {
		return s.index
	}

	return s.key
}

func (s Step) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}

	return s.key
}

// Path is an ordered sequence of steps.
type Path []Step

// NewPath builds a path from string and integer values.
func NewPath(steps ...any) (Path, error) {
	path := make(Path, 0, len(steps))

	for i, raw := range steps {
		step, err := toStep(raw)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		path = append(path, step)
	}

	return path, nil
}

// ParsePath splits s on splitChar. When parseIndices is set, segments that
// parse as integers become index steps; the others stay keys.
// An empty splitChar yields a single-key path.
func ParsePath(s, splitChar string, parseIndices bool) Path {
	if splitChar == "" {
		return Path{Key(s)}
	}

	segments := strings.Split(s, splitChar)
	path := make(Path, 0, len(segments))

	for _, segment := range segments {
		path = append(path, parseSegment(segment, parseIndices))
	}

	return path
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, step := range p {
		parts[i] = step.String()
	}

	return strings.Join(parts, DefaultSplitChar)
}

func parseSegment(segment string, parseIndices bool) Step {
	if parseIndices {
		if n, err := strconv.Atoi(segment); err == nil {
			return Index(n)
		}
	}

	return Key(segment)
}

func toStep(raw any) (Step, error) {
	switch v := raw.(type) {
	case Step:
		return v, nil
	case string:
		return Key(v), nil
	case int:
		return Index(v), nil
	case int8:
		return Index(int(v)), nil
	case int16:
		return Index(int(v)), nil
	case int32:
		return Index(int(v)), nil
	case int64:
		return Index(int(v)), nil
	case uint8:
		return Index(int(v)), nil
	case uint16:
		return Index(int(v)), nil
	case uint32:
		return Index(int(v)), nil
	case uint:
		return unsignedStep(uint64(v))
	case uint64:
		return unsignedStep(v)
	case float32:
		return floatStep(float64(v))
	case float64:
		return floatStep(v)
	default:
		return Step{}, fmt.Errorf("%w: %T", ErrInvalidStep, raw)
	}
}

func unsignedStep(v uint64) (Step, error) {
	if v > math.MaxInt {
		return Step{}, fmt.Errorf("%w: index %d overflows int", ErrInvalidStep, v)
	}

	return Index(int(v)), nil
}

// floatStep accepts floats holding a whole number, as produced by JSON decoding.
func floatStep(v float64) (Step, error) {
	if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
		return Step{}, fmt.Errorf("%w: %v is not an integer index", ErrInvalidStep, v)
	}

	return Index(int(v)), nil
}
