package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")
	ErrEmpty = fmt.Errorf("%w: no root element", ErrParse)
	ErrRoot  = fmt.Errorf("%w: bad root", ErrParse)
)
