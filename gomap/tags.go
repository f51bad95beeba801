package gomap

import (
	"reflect"
	"strings"
)

const tagName = "cfg"

type fieldTag struct {
	name     string
	omit     bool
	vector   bool
	required bool
}

func parseTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup(tagName)
	if !ok {
		return fieldTag{name: f.Name}
	}
	if tag == "-" {
		return fieldTag{omit: true}
	}
	parts := strings.Split(tag, ",")
	res := fieldTag{name: strings.TrimSpace(parts[0])}
	if res.name == "" {
		res.name = f.Name
	}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "vector":
			res.vector = true
		case "required":
			res.required = true
		}
	}
	return res
}

// join places name below prefix; names starting with ":" are attributes of
// prefix itself.
func join(prefix, name string) string {
	switch {
	case prefix == "":
		return strings.TrimPrefix(name, ":")
	case strings.HasPrefix(name, ":"):
		return prefix + name
	}
	return prefix + "." + name
}
