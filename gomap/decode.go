package gomap

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/signadot/flatcfg"
)

var (
	ErrNotStruct = errors.New("not a pointer to a struct")
	ErrRequired  = errors.New("required path missing")
)

type decodeOpts struct {
	prefix string
}

type DecodeOption func(*decodeOpts)

// Prefix makes tags relative to path p.
func Prefix(p string) DecodeOption {
	return func(o *decodeOpts) { o.prefix = flatcfg.Canonicalize(p) }
}

// Decode fills the struct v points to from c. All fields are attempted;
// the errors of those which fail are joined.
func Decode(c *flatcfg.Config, v any, opts ...DecodeOption) error {
	do := &decodeOpts{}
	for _, o := range opts {
		o(do)
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrNotStruct, v)
	}
	return decodeStruct(c, val.Elem(), do.prefix)
}

func decodeStruct(c *flatcfg.Config, val reflect.Value, prefix string) error {
	ty := val.Type()
	var errs []error
	for i := range ty.NumField() {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := parseTag(f)
		if tag.omit {
			continue
		}
		if err := decodeField(c, val.Field(i), f.Type, join(prefix, tag.name), tag); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

func decodeField(c *flatcfg.Config, fv reflect.Value, ty reflect.Type, p string, tag fieldTag) error {
	switch {
	case flatcfg.Decodes(ty) && !tag.vector:
		rv, err := flatcfg.TryGetValue(c, p, ty)
		if errors.Is(err, flatcfg.ErrNotFound) {
			return missing(p, tag)
		}
		if err != nil {
			return err
		}
		fv.Set(rv)
		return nil
	case ty.Kind() == reflect.Slice:
		rv, err := flatcfg.TryGetVectorValue(c, p, ty.Elem())
		if errors.Is(err, flatcfg.ErrNotFound) {
			return missing(p, tag)
		}
		if err != nil {
			return err
		}
		fv.Set(rv)
		return nil
	case ty.Kind() == reflect.Struct:
		if tag.required && !c.Exists(p) {
			return fmt.Errorf("%w: %s", ErrRequired, p)
		}
		return decodeStruct(c, fv, p)
	case ty.Kind() == reflect.Pointer && ty.Elem().Kind() == reflect.Struct:
		if !c.Exists(p) {
			return missing(p, tag)
		}
		if fv.IsNil() {
			fv.Set(reflect.New(ty.Elem()))
		}
		return decodeStruct(c, fv.Elem(), p)
	}
	return fmt.Errorf("%w: %s: unsupported field type %s", flatcfg.ErrConvert, p, ty)
}

func missing(p string, tag fieldTag) error {
	if tag.required {
		return fmt.Errorf("%w: %s", ErrRequired, p)
	}
	return nil
}
