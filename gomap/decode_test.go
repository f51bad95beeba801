package gomap

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/flatcfg"
)

const doc = `<config>
  <Level0 attr1="3" attr2="2.5" attr3="true">
    <Timeout>1m</Timeout>
    <Tags>a, b, c</Tags>
  </Level0>
  <Histograms>
    <Histogram name="h0" title="first" bins-x="50, 0, 1"/>
    <Histogram name="h1" bins-x="10, x, 1"/>
  </Histograms>
</config>`

type histogram struct {
	Name  string    `cfg:":name"`
	Title string    `cfg:":title"`
	Bins  []float64 `cfg:":bins-x,vector"`
}

type level0 struct {
	Attr1   int           `cfg:":attr1"`
	Attr2   float64       `cfg:":attr2"`
	Enabled bool          `cfg:":attr3,required"`
	Timeout time.Duration `cfg:"Timeout"`
	Tags    []string
	Missing string `cfg:"Nope"`
	skipped string
}

type setup struct {
	Level0 level0
	Main   histogram  `cfg:"Histograms.Histogram"`
	Second *histogram `cfg:"Histograms.Histogram[1]"`
	Third  *histogram `cfg:"Histograms.Histogram[2]"`
	Ignore string     `cfg:"-"`
}

func load(t *testing.T) *flatcfg.Config {
	t.Helper()
	c := flatcfg.New()
	if err := c.Load(doc, true); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDecode(t *testing.T) {
	c := load(t)
	var s setup
	s.Level0.Missing = "default"
	s.Ignore = "kept"
	err := Decode(c, &s)
	if !errors.Is(err, flatcfg.ErrConvert) {
		t.Fatalf("expected conversion error for h1 bins, got %v", err)
	}
	want := setup{
		Level0: level0{
			Attr1:   3,
			Attr2:   2.5,
			Enabled: true,
			Timeout: time.Minute,
			Tags:    []string{"a", "b", "c"},
			Missing: "default",
		},
		Main:   histogram{Name: "h0", Title: "first", Bins: []float64{50, 0, 1}},
		Second: &histogram{Name: "h1"},
		Ignore: "kept",
	}
	if diff := cmp.Diff(want, s, cmp.AllowUnexported(level0{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodePrefix(t *testing.T) {
	c := load(t)
	h := histogram{Title: "title", Bins: []float64{1, 0, 1}}
	if err := Decode(c, &h, Prefix("Histograms.Histogram")); err != nil {
		t.Fatal(err)
	}
	want := histogram{Name: "h0", Title: "first", Bins: []float64{50, 0, 1}}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	var l level0
	if err := Decode(c, &l, Prefix(" Level0 [0] ")); err != nil {
		t.Fatal(err)
	}
	if l.Attr1 != 3 || l.Timeout != time.Minute {
		t.Errorf("got %+v", l)
	}
}

func TestDecodeRequired(t *testing.T) {
	c := flatcfg.New()
	if err := c.Load(`<r><Level0 attr1="1"/></r>`, true); err != nil {
		t.Fatal(err)
	}
	var l level0
	err := Decode(c, &l, Prefix("Level0"))
	if !errors.Is(err, ErrRequired) {
		t.Errorf("expected ErrRequired, got %v", err)
	}
	if l.Attr1 != 1 {
		t.Errorf("other fields should still decode, got %+v", l)
	}
}

func TestDecodeNotStruct(t *testing.T) {
	c := load(t)
	var n int
	for _, v := range []any{nil, n, &n, histogram{}, (*histogram)(nil)} {
		if err := Decode(c, v); !errors.Is(err, ErrNotStruct) {
			t.Errorf("%T: expected ErrNotStruct, got %v", v, err)
		}
	}
}

func TestJoin(t *testing.T) {
	for _, tc := range []struct {
		prefix, name, want string
	}{
		{"", "a", "a"},
		{"", ":a", "a"},
		{"p", "a", "p.a"},
		{"p", ":a", "p:a"},
		{"p", "a.b:c", "p.a.b:c"},
	} {
		if got := join(tc.prefix, tc.name); got != tc.want {
			t.Errorf("join(%q, %q) = %q, want %q", tc.prefix, tc.name, got, tc.want)
		}
	}
}
