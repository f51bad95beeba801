package flatcfg

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/signadot/flatcfg/fpath"
)

// TryGetValue is TryGet for a type known only at run time.
func TryGetValue(c *Config, path string, ty reflect.Type) (reflect.Value, error) {
	p := fpath.Canonicalize(path)
	text, ok := c.m[p]
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return convertValue(c, ty, p, text)
}

// TryGetVectorValue is TryGetVector for an element type known only at run
// time. The result is a slice of elem.
func TryGetVectorValue(c *Config, path string, elem reflect.Type) (reflect.Value, error) {
	p := fpath.Canonicalize(path)
	text, ok := c.m[p]
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	fields := splitVector(text)
	res := reflect.MakeSlice(reflect.SliceOf(elem), len(fields), len(fields))
	var errs []error
	for i, f := range fields {
		v, err := convertValue(c, elem, p, f)
		if err != nil {
			errs = append(errs, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		res.Index(i).Set(v)
	}
	return res, errors.Join(errs...)
}

// Decodes reports whether values of type ty are read as a single value:
// ty has a registered decoder, is a TextUnmarshaler or is a scalar kind.
func Decodes(ty reflect.Type) bool {
	if lookupDecoder(ty) != nil || reflect.PointerTo(ty).Implements(textUnmarshalerType) {
		return true
	}
	switch ty.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func convertValue(c *Config, ty reflect.Type, p, text string) (reflect.Value, error) {
	v, err := decodeValue(c, ty, p, text)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrConvert, p, err)
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Zero(ty), nil
	}
	if !rv.Type().AssignableTo(ty) {
		return reflect.Value{}, fmt.Errorf("%w: %s: decoder gave %s, not %s", ErrConvert, p, rv.Type(), ty)
	}
	if rv.Type() != ty {
		res := reflect.New(ty).Elem()
		res.Set(rv)
		return res, nil
	}
	return rv, nil
}
