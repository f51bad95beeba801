package encode

import "github.com/signadot/flatcfg/format"

type EncodeOption func(*EncState)

func EncodeOutput(o format.Output) EncodeOption {
	return func(es *EncState) { es.output = o }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeIndent sets the JSON indentation width; 0 writes compact JSON.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// OutputFromOpts extracts the output rendering from encode options.
func OutputFromOpts(opts ...EncodeOption) format.Output {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.output
}
