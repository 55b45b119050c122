package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bind fills the top-level exported fields of the struct behind target from
// lookup, keyed by the tag value or the lowercased field name. A "-" tag
// skips the field; absent parameters leave it unchanged.
func bind(target any, tag string, lookup func(name string) []string, wrap error) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", wrap, ErrInvalidTarget)
	}
	rv = rv.Elem()

	for _, sf := range reflect.VisibleFields(rv.Type()) {
		if !sf.IsExported() || sf.Anonymous || len(sf.Index) > 1 {
			continue
		}
		name := paramName(sf, tag)
		if name == "" {
			continue
		}
		raw := lookup(name)
		if len(raw) == 0 {
			continue
		}
		if err := assign(rv.FieldByIndex(sf.Index), raw); err != nil {
			return fmt.Errorf("%w: %s: %v", wrap, sf.Name, err)
		}
	}
	return nil
}

func paramName(sf reflect.StructField, tag string) string {
	v, ok := sf.Tag.Lookup(tag)
	if !ok || v == "" {
		return strings.ToLower(sf.Name)
	}
	name, _, _ := strings.Cut(v, ",")
	if name == "-" {
		return ""
	}
	return name
}

// assign stores raw into dst. Slices take every value, splitting on commas;
// scalars take the first.
func assign(dst reflect.Value, raw []string) error {
	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(dst.Elem(), raw)
	case reflect.Slice:
		parts := splitList(raw)
		out := reflect.MakeSlice(dst.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := assign(out.Index(i), []string{p}); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}
	return parseScalar(dst, raw[0])
}

func parseScalar(dst reflect.Value, s string) error {
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("%q is not an unsigned integer", s)
		}
		dst.SetUint(n)
	case reflect.Bool:
		b, ok := parseBool(s)
		if !ok {
			return fmt.Errorf("%q is not a boolean", s)
		}
		dst.SetBool(b)
	default:
		return fmt.Errorf("cannot bind into %s", dst.Type())
	}
	return nil
}

// parseBool also accepts the checkbox spellings on/off and yes/no.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, true
	case "off", "no":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

func splitList(raw []string) []string {
	var out []string
	for _, v := range raw {
		for p := range strings.SplitSeq(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
