package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/flatcfg"
)

const doc = `<config>
  <Level0 attr1="3" attr2="2.5" attr3="true">
    <Name>deep</Name>
  </Level0>
  <Histograms>
    <Histogram name="h0" bins-x="50, 0, 1"/>
    <Histogram name="h1"/>
  </Histograms>
  <Dir>/var/data</Dir>
  <Out>$[get("Dir")]/out</Out>
  <Count>$[getInt("Level0:attr1") * 2]</Count>
</config>`

func newConfig(t *testing.T) *flatcfg.Config {
	t.Helper()
	c := flatcfg.New()
	if err := c.Load(doc, true); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestEval(t *testing.T) {
	c := newConfig(t)
	for _, tc := range []struct {
		src  string
		want any
	}{
		{`get("Level0.Name")`, "deep"},
		{`getOr("Level0.Nope", "x")`, "x"},
		{`getOr("Level0.Name", "x")`, "deep"},
		{`exists("Level0:attr1")`, true},
		{`exists("Level0:attr9")`, false},
		{`getInt("Level0:attr1") + 1`, 4},
		{`getFloat("Level0:attr2") * 2`, 5.0},
		{`getBool("Level0:attr3") && true`, true},
		{`children("Histograms")`, []string{"Histograms.Histogram", "Histograms.Histogram[1]"}},
		{`len(children("Histograms"))`, 2},
		{`vector("Histograms.Histogram:bins-x")`, []string{"50", "0", "1"}},
		{`map(children("Histograms"), getOr(# + ":bins-x", "none"))`, []any{"50, 0, 1", "none"}},
		{`whereami()`, "<string>"},
		{`n * 2`, 42},
	} {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Eval(c, tc.src, Env{"n": 21})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	c := newConfig(t)
	for _, src := range []string{
		`get("Nope")`,
		`getInt("Level0.Name")`,
		`get(`,
		`get(1)`,
	} {
		if _, err := Eval(c, src, nil); !errors.Is(err, ErrEval) {
			t.Errorf("%s: expected ErrEval, got %v", src, err)
		}
	}
	_, err := Eval(c, `get("Nope")`, nil)
	if !errors.Is(err, flatcfg.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEvalBool(t *testing.T) {
	c := newConfig(t)
	ok, err := EvalBool(c, `exists("Dir") && getInt("Level0:attr1") > 2`, nil)
	if err != nil || !ok {
		t.Errorf("got %t %v", ok, err)
	}
	if _, err := EvalBool(c, `get("Dir")`, nil); err == nil {
		t.Errorf("expected error for non bool")
	}
}

func TestProgram(t *testing.T) {
	c := newConfig(t)
	p, err := Compile(c, `getInt("Level0:attr1")`, nil)
	if err != nil {
		t.Fatal(err)
	}
	flatcfg.Set(c, "Level0:attr1", 10)
	got, err := p.Run()
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Errorf("got %v", got)
	}
}

func TestExpand(t *testing.T) {
	c := newConfig(t)
	for _, tc := range []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"$[get(\"Dir\")]/x", "/var/data/x"},
		{"$[1+1] and $[getFloat(\"Level0:attr2\")]", "2 and 2.5"},
		{"$[vector(\"Histograms.Histogram:bins-x\")]", "50,0,1"},
		{"$[get(\"Histograms.Histogram[1]:name\")]", "h1"},
		{`$["a\]b"]`, "a]b"},
		{`$[getOr("x", "[\]")]`, "[]"},
		{"$[unclosed", "$[unclosed"},
		{"cost: $", "cost: $"},
	} {
		got, err := Expand(c, tc.in, nil)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, got, tc.want)
		}
	}
	if _, err := Expand(c, `$[get("Nope")]`, nil); err == nil {
		t.Errorf("expected error")
	}
}

func TestExpandAll(t *testing.T) {
	c := newConfig(t)
	if err := ExpandAll(c, nil); err != nil {
		t.Fatal(err)
	}
	if got := c.GetString("Out", ""); got != "/var/data/out" {
		t.Errorf("Out: got %q", got)
	}
	if got := c.GetInt("Count", 0); got != 6 {
		t.Errorf("Count: got %d", got)
	}
}
