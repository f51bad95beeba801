package encode

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/flatcfg/flatten"
	"github.com/signadot/flatcfg/format"
)

var sample = flatten.Map{
	"Level0":         flatten.DNE,
	"Level0:attr1":   "3",
	"Level0.Level1":  "hello world",
	"Parent.Item[1]": "b",
	"Parent.Item":    "a",
}

func TestEncodeText(t *testing.T) {
	got := MustString(sample)
	want := `[Level0] = <DNE/>
[Level0.Level1] = hello world
[Level0:attr1] = 3
[Parent.Item] = a
[Parent.Item[1]] = b
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTextLinePerEntry(t *testing.T) {
	line := regexp.MustCompile(`^\[([^\]]*(\[\d+\])?[^\]]*)\] = (.*)$`)
	lines := strings.Split(strings.TrimSuffix(MustString(sample), "\n"), "\n")
	if len(lines) != len(sample) {
		t.Fatalf("got %d lines for %d entries", len(lines), len(sample))
	}
	for _, l := range lines {
		if !line.MatchString(l) {
			t.Errorf("line %q does not match [path] = value", l)
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := MustString(flatten.Map{}); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample, buf, EncodeOutput(format.JSONOutput)); err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if diff := cmp.Diff(map[string]string(sample), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), `"Level0": "<DNE/>"`) {
		t.Errorf("expected unescaped, indented DNE entry in %s", buf.String())
	}

	buf.Reset()
	if err := Encode(sample, buf, EncodeOutput(format.JSONOutput), EncodeIndent(0)); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("compact json spans lines: %q", buf.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	got := MustString(sample, EncodeOutput(format.YAMLOutput))
	idx := func(s string) int {
		i := strings.Index(got, s)
		if i == -1 {
			t.Fatalf("%q missing from %q", s, got)
		}
		return i
	}
	if !(idx("Level0:") < idx("Level0.Level1:") && idx("Level0.Level1:") < idx("Parent.Item:")) {
		t.Errorf("yaml keys not in order:\n%s", got)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	got := MustString(flatten.Map{"a.b[1]:c": "100%"}, EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
	plain := regexp.MustCompile("\x1b\\[[0-9;]*m").ReplaceAllString(got, "")
	if plain != "[a.b[1]:c] = 100%\n" {
		t.Errorf("stripped colors = %q", plain)
	}
}

func TestOutputFromOpts(t *testing.T) {
	if o := OutputFromOpts(EncodeOutput(format.YAMLOutput)); o != format.YAMLOutput {
		t.Errorf("got %s", o)
	}
}
