package vtype

import "strings"

func decodeBool(s string, t *Type) (Value, error) {
	switch strings.ToLower(s) {
	case "t", "true":
		return Bool(true), nil
	case "f", "false":
		return Bool(false), nil
	}
	return nil, formatError(t, s, "not a boolean")
}

func encodeBool(v Bool) string {
	if v {
		return "true"
	}
	return "false"
}
