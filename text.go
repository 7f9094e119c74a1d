package vtype

import "strings"

// decodeString right-pads CHAR values with spaces to the declared octet
// length; the length counts bytes, not runes, so a multi-byte rune fills
// more of the field than an ASCII character.
func decodeString(s string, t *Type) (Value, error) {
	if t.Kind == CharKind && t.Length > 0 {
		if pad := int(t.Length) - len(s); pad > 0 {
			s += strings.Repeat(" ", pad)
		}
	}
	return Text(s), nil
}
