package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/flatcfg/ir"
)

type xmlFrame struct {
	node *ir.Node
	text strings.Builder
}

func parseXML(d []byte, opts *parseOpts) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.CharsetReader = charsetReader
	var (
		root  *ir.Node
		stack []*xmlFrame
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node := ir.NewNode(t.Name.Local)
			for _, a := range t.Attr {
				if isNamespaceDecl(a.Name) {
					continue
				}
				node.WithAttr(a.Name.Local, a.Value)
			}
			if len(stack) == 0 {
				if root != nil {
					line, col := dec.InputPos()
					return nil, fmt.Errorf("%w: second root element <%s> at %d:%d", ErrRoot, t.Name.Local, line, col)
				}
				root = node
			} else {
				stack[len(stack)-1].node.Append(node)
			}
			stack = append(stack, &xmlFrame{node: node})
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			text := top.text.String()
			if strings.TrimSpace(text) == "" {
				continue
			}
			if !opts.keepSpace {
				text = strings.TrimSpace(text)
			}
			top.node.WithContent(text)
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].text.Write(t)
		}
	}
	if root == nil {
		return nil, ErrEmpty
	}
	return root, nil
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}

// charsetReader accepts the single byte encodings configuration files are
// commonly declared with; encoding/xml only handles UTF-8 itself.
func charsetReader(charset string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "ascii":
		return r, nil
	case "iso-8859-1", "latin1", "latin-1":
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		buf := make([]rune, len(d))
		for i, b := range d {
			buf[i] = rune(b)
		}
		return strings.NewReader(string(buf)), nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
}
