package flatcfg

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/signadot/flatcfg/debug"
	"github.com/signadot/flatcfg/fpath"
)

// Get returns the value at path converted to T, or dv if path does not
// exist. When the stored text cannot be converted, Get returns the zero
// value of T.
func Get[T any](c *Config, path string, dv T) T {
	v, err := TryGet[T](c, path)
	if err == nil {
		return v
	}
	if errors.Is(err, ErrNotFound) {
		return dv
	}
	c.convertFailed(err)
	return v
}

// TryGet is Get without a default. A missing path gives ErrNotFound and
// text which cannot be converted gives ErrConvert.
func TryGet[T any](c *Config, path string) (T, error) {
	p := fpath.Canonicalize(path)
	text, ok := c.m[p]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return convert[T](c, p, text)
}

// GetVector splits the text at path on commas, after removing all
// whitespace, and converts each element to T. A trailing comma does not
// add an element and empty text gives an empty vector. dv is returned if
// path does not exist; elements which cannot be converted are zero.
func GetVector[T any](c *Config, path string, dv []T) []T {
	vs, err := TryGetVector[T](c, path)
	if err == nil {
		return vs
	}
	if errors.Is(err, ErrNotFound) {
		return dv
	}
	c.convertFailed(err)
	return vs
}

// TryGetVector is GetVector without a default. On conversion failures it
// still returns the vector, with zero in place of each failed element.
func TryGetVector[T any](c *Config, path string) ([]T, error) {
	p := fpath.Canonicalize(path)
	text, ok := c.m[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	fields := splitVector(text)
	res := make([]T, len(fields))
	var errs []error
	for i, f := range fields {
		v, err := convert[T](c, p, f)
		if err != nil {
			errs = append(errs, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		res[i] = v
	}
	return res, errors.Join(errs...)
}

func splitVector(text string) []string {
	s := fpath.StripSpace(text)
	if s == "" {
		return []string{}
	}
	fields := strings.Split(s, ",")
	if fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// Set stores v at path, replacing any previous value. Numbers are written
// so that Get reads back the same value.
func Set[T any](c *Config, path string, v T) {
	c.init()
	p := fpath.Canonicalize(path)
	text, err := encodeValue(v)
	if err != nil {
		c.log.Debug("encoder failed, storing default format", "path", p, "error", err)
		text = fmt.Sprint(v)
	}
	c.m[p] = text
}

func (c *Config) convertFailed(err error) {
	c.init()
	c.log.Debug("conversion failed", "error", err)
	if debug.Convert() {
		debug.Logf("%v\n", err)
	}
}

// GetString is Get for a string.
func (c *Config) GetString(path, dv string) string { return Get(c, path, dv) }

// GetBool is Get for a bool.
func (c *Config) GetBool(path string, dv bool) bool { return Get(c, path, dv) }

// GetInt is Get for an int.
func (c *Config) GetInt(path string, dv int) int { return Get(c, path, dv) }

// GetInt64 is Get for an int64.
func (c *Config) GetInt64(path string, dv int64) int64 { return Get(c, path, dv) }

// GetUint64 is Get for a uint64.
func (c *Config) GetUint64(path string, dv uint64) uint64 { return Get(c, path, dv) }

// GetFloat64 is Get for a float64.
func (c *Config) GetFloat64(path string, dv float64) float64 { return Get(c, path, dv) }

// GetDuration is Get for a time.Duration, written in Go duration syntax or
// as a count of nanoseconds.
func (c *Config) GetDuration(path string, dv time.Duration) time.Duration { return Get(c, path, dv) }

// GetStrings is GetVector for strings.
func (c *Config) GetStrings(path string, dv []string) []string { return GetVector(c, path, dv) }

// GetInts is GetVector for ints.
func (c *Config) GetInts(path string, dv []int) []int { return GetVector(c, path, dv) }

// GetFloat64s is GetVector for float64s.
func (c *Config) GetFloat64s(path string, dv []float64) []float64 { return GetVector(c, path, dv) }
