package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"xml", XMLFormat},
		{"X", XMLFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
		{"j", JSONFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if err != nil {
				t.Fatalf("ParseFormat(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(toml) error = %v, want ErrBadFormat", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s, want %s", g, f)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"a/b/config.xml": XMLFormat,
		"config.YAML":    YAMLFormat,
		"config.yml":     YAMLFormat,
		"config.json":    JSONFormat,
		"config":         XMLFormat,
	}
	for p, want := range tests {
		if got := FromPath(p); got != want {
			t.Errorf("FromPath(%q) = %s, want %s", p, got, want)
		}
	}
}

func TestSniff(t *testing.T) {
	tests := map[string]Format{
		"  <config/>":  XMLFormat,
		"\n{\"a\": 1}": JSONFormat,
		"[1, 2]":       JSONFormat,
		"a: 1\nb: 2\n": YAMLFormat,
		"":             XMLFormat,
	}
	for in, want := range tests {
		if got := Sniff([]byte(in)); got != want {
			t.Errorf("Sniff(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseOutput(t *testing.T) {
	o, err := ParseOutput("yaml")
	if err != nil {
		t.Fatal(err)
	}
	if o != YAMLOutput || o.String() != "yaml" {
		t.Errorf("got %s", o)
	}
	if _, err := ParseOutput("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseOutput(xml) error = %v, want ErrBadFormat", err)
	}
}
