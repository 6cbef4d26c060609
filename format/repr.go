package format

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/0xalexb/ebbe/pathget"
)

// Repr renders v as "<TypeName field=value ...>".
//
// Fields are resolved by key on maps and by name or tag on structs. When no
// field is given, every exported struct field is listed. Missing fields are
// skipped and strings are quoted.
func Repr(v any, fields ...string) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	if !rv.IsValid() || rv.Kind() == reflect.Pointer {
		return "<nil>"
	}

	name := rv.Type().Name()
	if name == "" {
		name = rv.Type().String()
	}

	if len(fields) == 0 && rv.Kind() == reflect.Struct {
		for _, sf := range reflect.VisibleFields(rv.Type()) {
			if sf.IsExported() && !sf.Anonymous {
				fields = append(fields, sf.Name)
			}
		}
	}

	var b strings.Builder

	b.WriteString("<" + name)

	const missing = missingField("")

	for _, field := range fields {
		value, err := pathget.Get(v, pathget.Path{pathget.Key(field)},
			pathget.WithAttributes(true), pathget.WithDefault(missing))
		if err != nil || value == missing {
			continue
		}

		if s, ok := value.(string); ok {
			fmt.Fprintf(&b, " %s=%q", field, s)
		} else {
			fmt.Fprintf(&b, " %s=%v", field, value)
		}
	}

	b.WriteString(">")

	return b.String()
}

type missingField string
