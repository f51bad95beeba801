package flatcfg

import (
	"fmt"
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type span struct {
	Lo, Hi int
}

func init() {
	RegisterDecoder(func(c *Config, p, _ string) (span, error) {
		lo, err := TryGet[int](c, p+":lo")
		if err != nil {
			return span{}, err
		}
		return span{Lo: lo, Hi: Get(c, p+":hi", lo)}, nil
	})
	RegisterEncoder(func(s span) (string, error) {
		return fmt.Sprintf("%d..%d", s.Lo, s.Hi), nil
	})
}

type upper string

func (u *upper) UnmarshalText(d []byte) error {
	*u = upper(strings.ToUpper(string(d)))
	return nil
}

func TestRegisteredDecoder(t *testing.T) {
	c := load(t, `<r><s lo="1" hi="4"/><s lo="2"/><s/></r>`)
	assert.Equal(t, span{1, 4}, Get(c, "s", span{}))
	assert.Equal(t, span{2, 2}, Get(c, "s[1]", span{}))
	assert.Equal(t, span{9, 9}, Get(c, "t", span{9, 9}))

	_, err := TryGet[span](c, "s[2]")
	assert.ErrorIs(t, err, ErrConvert)
	assert.ErrorIs(t, err, ErrNotFound)

	Set(c, "u", span{3, 5})
	assert.Equal(t, "3..5", c.m["u"])
}

func TestRegisterTwice(t *testing.T) {
	err := RegisterDecoder(func(*Config, string, string) (span, error) {
		return span{}, nil
	})
	assert.ErrorIs(t, err, ErrDecoderExists)
	err = RegisterEncoder(func(span) (string, error) { return "", nil })
	assert.ErrorIs(t, err, ErrEncoderExists)
}

func TestTextConversions(t *testing.T) {
	c := load(t, `<r><addr>10.0.0.1</addr><name>abc</name></r>`)
	addr, err := TryGet[netip.Addr](c, "addr")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), addr)
	assert.Equal(t, upper("ABC"), Get(c, "name", upper("")))

	_, err = TryGet[netip.Addr](c, "name")
	assert.ErrorIs(t, err, ErrConvert)

	Set(c, "addr", netip.MustParseAddr("::1"))
	assert.Equal(t, "::1", c.m["addr"])
}

func TestNamedKinds(t *testing.T) {
	type level int
	type label string
	c := New()
	Set(c, "l", level(3))
	Set(c, "s", label("x"))
	assert.Equal(t, level(3), Get(c, "l", level(0)))
	assert.Equal(t, label("x"), Get(c, "s", label("")))
	assert.Equal(t, any("x"), Get[any](c, "s", nil))
}

func TestSplitVector(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"a", []string{"a"}},
		{"a,", []string{"a"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{",", []string{""}},
		{",,", []string{"", ""}},
		{"a,,b,", []string{"a", "", "b"}},
		{"1 2, 3", []string{"12", "3"}},
	} {
		assert.Equal(t, tc.want, splitVector(tc.in), "%q", tc.in)
	}
}
