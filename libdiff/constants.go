package libdiff

import "fmt"

type Op int

const (
	Equal Op = iota
	Insert
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "="
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

func (o Op) Reverse() Op {
	switch o {
	case Insert:
		return Delete
	case Delete:
		return Insert
	}
	return o
}
