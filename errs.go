package flatcfg

import "errors"

var (
	ErrNotFound      = errors.New("path not found")
	ErrConvert       = errors.New("conversion error")
	ErrDecoderExists = errors.New("decoder exists")
	ErrEncoderExists = errors.New("encoder exists")
	ErrPatch         = errors.New("patch error")
)
