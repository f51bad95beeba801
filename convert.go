package flatcfg

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DecodeFunc converts the text stored at path into a value. c is the
// Config being read, so a decoder can combine several paths.
type DecodeFunc func(c *Config, path, text string) (any, error)

// EncodeFunc converts a value into the text Set stores.
type EncodeFunc func(v any) (string, error)

var (
	mu       sync.RWMutex
	decoders = map[reflect.Type]DecodeFunc{}
	encoders = map[reflect.Type]EncodeFunc{}
)

// RegisterDecoder makes f the conversion used by Get, TryGet and the
// vector accessors for values of type T. A type may be registered once.
func RegisterDecoder[T any](f func(c *Config, path, text string) (T, error)) error {
	ty := reflect.TypeFor[T]()
	mu.Lock()
	defer mu.Unlock()
	if _, present := decoders[ty]; present {
		return fmt.Errorf("%s: %w", ty, ErrDecoderExists)
	}
	decoders[ty] = func(c *Config, path, text string) (any, error) {
		return f(c, path, text)
	}
	return nil
}

// RegisterEncoder makes f the conversion used by Set for values of type T.
func RegisterEncoder[T any](f func(v T) (string, error)) error {
	ty := reflect.TypeFor[T]()
	mu.Lock()
	defer mu.Unlock()
	if _, present := encoders[ty]; present {
		return fmt.Errorf("%s: %w", ty, ErrEncoderExists)
	}
	encoders[ty] = func(v any) (string, error) {
		return f(v.(T))
	}
	return nil
}

func init() {
	RegisterDecoder(func(_ *Config, _, text string) (time.Duration, error) {
		return parseDuration(text)
	})
	RegisterEncoder(func(d time.Duration) (string, error) {
		return d.String(), nil
	})
}

func lookupDecoder(ty reflect.Type) DecodeFunc {
	mu.RLock()
	defer mu.RUnlock()
	return decoders[ty]
}

func lookupEncoder(ty reflect.Type) EncodeFunc {
	mu.RLock()
	defer mu.RUnlock()
	return encoders[ty]
}

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
)

func convert[T any](c *Config, path, text string) (T, error) {
	var zero T
	v, err := decodeValue(c, reflect.TypeFor[T](), path, text)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrConvert, path, err)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s: decoder gave %T, not %T", ErrConvert, path, v, zero)
	}
	return t, nil
}

func decodeValue(c *Config, ty reflect.Type, path, text string) (any, error) {
	if f := lookupDecoder(ty); f != nil {
		return f(c, path, text)
	}
	if reflect.PointerTo(ty).Implements(textUnmarshalerType) {
		pv := reflect.New(ty)
		if err := pv.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return nil, err
		}
		return pv.Elem().Interface(), nil
	}
	rv := reflect.New(ty).Elem()
	switch ty.Kind() {
	case reflect.String:
		rv.SetString(text)
	case reflect.Bool:
		b, err := parseBool(text)
		if err != nil {
			return nil, err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := parseInt(text, ty.Bits())
		if err != nil {
			return nil, err
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := parseUint(text, ty.Bits())
		if err != nil {
			return nil, err
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), ty.Bits())
		if err != nil {
			return nil, err
		}
		rv.SetFloat(f)
	case reflect.Interface:
		if !reflect.TypeFor[string]().Implements(ty) {
			return nil, fmt.Errorf("no conversion to %s", ty)
		}
		rv.Set(reflect.ValueOf(text))
	default:
		return nil, fmt.Errorf("no conversion to %s", ty)
	}
	return rv.Interface(), nil
}

// parseBool accepts "true" and "false" and otherwise the truth of an
// integer.
func parseBool(text string) (bool, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	i, err := parseInt(text, 64)
	if err != nil {
		return false, err
	}
	return i != 0, nil
}

// parseInt also accepts a decimal or exponent form, truncated toward zero.
func parseInt(text string, bits int) (int64, error) {
	s := strings.TrimSpace(text)
	i, err := strconv.ParseInt(s, 10, bits)
	if err == nil {
		return i, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil {
		return 0, err
	}
	f = math.Trunc(f)
	lim := math.Ldexp(1, bits-1)
	if math.IsNaN(f) || f < -lim || f >= lim {
		return 0, fmt.Errorf("%q out of range for int%d", text, bits)
	}
	return int64(f), nil
}

func parseUint(text string, bits int) (uint64, error) {
	s := strings.TrimSpace(text)
	u, err := strconv.ParseUint(s, 10, bits)
	if err == nil {
		return u, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil {
		return 0, err
	}
	f = math.Trunc(f)
	if math.IsNaN(f) || f < 0 || f >= math.Ldexp(1, bits) {
		return 0, fmt.Errorf("%q out of range for uint%d", text, bits)
	}
	return uint64(f), nil
}

// parseDuration accepts Go duration syntax or a bare count of nanoseconds.
func parseDuration(text string) (time.Duration, error) {
	s := strings.TrimSpace(text)
	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}
	i, ierr := strconv.ParseInt(s, 10, 64)
	if ierr != nil {
		return 0, err
	}
	return time.Duration(i), nil
}

func encodeValue(v any) (string, error) {
	if v == nil {
		return DNE, nil
	}
	ty := reflect.TypeOf(v)
	if f := lookupEncoder(ty); f != nil {
		return f(v)
	}
	if ty.Implements(textMarshalerType) {
		d, err := v.(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	rv := reflect.ValueOf(v)
	switch ty.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, ty.Bits()), nil
	}
	return fmt.Sprint(v), nil
}
