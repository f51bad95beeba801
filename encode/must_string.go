package encode

import (
	"bytes"

	"github.com/signadot/flatcfg/flatten"
)

func MustString(m flatten.Map, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(m, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
