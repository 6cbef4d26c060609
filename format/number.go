package format

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrInvalidNumber is returned by Int for NaN and infinite values.
var ErrInvalidNumber = errors.New("number must be finite")

// Number is the set of types accepted by Int.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Int renders n truncated toward zero with comma thousands separators.
// Values outside the int64 range are rendered in full.
func Int[N Number](n N) (string, error) {
	v := reflect.ValueOf(n)

	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return humanize.BigComma(new(big.Int).SetUint64(v.Uint())), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v", ErrInvalidNumber, f)
		}

		whole, _ := big.NewFloat(math.Trunc(f)).Int(nil)

		return humanize.BigComma(whole), nil
	default:
		return humanize.Comma(v.Int()), nil
	}
}

// IntWithSeparator is Int with a custom thousands separator.
func IntWithSeparator[N Number](n N, separator string) (string, error) {
	formatted, err := Int(n)
	if err != nil || separator == "," {
		return formatted, err
	}

	return strings.ReplaceAll(formatted, ",", separator), nil
}
