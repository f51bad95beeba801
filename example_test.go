package flatcfg_test

import (
	"fmt"

	"github.com/signadot/flatcfg"
)

type Histogram struct {
	Name   string
	Title  string
	NBins  int
	Lo, Hi float64
}

func decodeHistogram(c *flatcfg.Config, p, _ string) (*Histogram, error) {
	bins := flatcfg.GetVector(c, p+":bins-x", []float64{1, 0, 1})
	if len(bins) != 3 {
		return nil, fmt.Errorf("%s: bins-x needs 3 values, got %d", p, len(bins))
	}
	return &Histogram{
		Name:  flatcfg.Get(c, p+":name", "hist_name"),
		Title: flatcfg.Get(c, p+":title", "title"),
		NBins: int(bins[0]),
		Lo:    bins[1],
		Hi:    bins[2],
	}, nil
}

func init() {
	flatcfg.RegisterDecoder(decodeHistogram)
}

func Example() {
	cfg := flatcfg.New()
	cfg.Load(`
<config>
  <Level0 attr1="3" attr3="true">
    <Level1><Level2 name="deep"/></Level1>
  </Level0>
  <Histograms>
    <Histogram name="h0" title="first" bins-x="50, 0, 1"/>
    <Histogram name="h1" title="second" bins-x="100, -5, 5"/>
    <Histogram name="h2"/>
  </Histograms>
</config>`, true)

	fmt.Println(flatcfg.Get(cfg, "Level0.Level1.Level2:name", "NA"))
	fmt.Println(flatcfg.Get(cfg, "Level0:attr1", 0))
	fmt.Println(flatcfg.Get(cfg, "Level0:attr3", false))
	fmt.Println(flatcfg.Get(cfg, "Level0:attr4", "absent"))

	for _, p := range cfg.ChildrenOf("Histograms") {
		h := flatcfg.Get[*Histogram](cfg, p, nil)
		if h == nil {
			continue
		}
		fmt.Printf("%s: %s, %d bins in [%g, %g]\n", h.Name, h.Title, h.NBins, h.Lo, h.Hi)
	}
	// Output:
	// deep
	// 3
	// true
	// absent
	// h0: first, 50 bins in [0, 1]
	// h1: second, 100 bins in [-5, 5]
	// h2: title, 1 bins in [0, 1]
}

func ExampleConfig_Dump() {
	cfg := flatcfg.New()
	cfg.Load(`<c><a x="1">t</a><a/></c>`, true)
	fmt.Print(cfg.Dump())
	// Output:
	// [a] = t
	// [a:x] = 1
	// [a[1]] = <DNE/>
}

func ExampleConfig_ChildrenOf() {
	cfg := flatcfg.New(flatcfg.SegmentChildren(true))
	cfg.Load(`<c><Foo><a/><b/></Foo><Foo2/></c>`, true)
	fmt.Println(cfg.ChildrenOf("Foo"))
	// Output:
	// [Foo.a Foo.b]
}
