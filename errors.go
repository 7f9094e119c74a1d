package vtype

import "fmt"

// ValueFormatError reports raw field text that does not match the grammar of
// its declared type: malformed numerics, unterminated containers, wrong row
// field counts.
type ValueFormatError struct {
	TypeName string
	Raw      string
	Reason   string
}

func (e *ValueFormatError) Error() string {
	return fmt.Sprintf("cannot decode %q as %s: %s", e.Raw, e.TypeName, e.Reason)
}

// UnsupportedTypeError reports a type descriptor the codec does not
// recognize.
type UnsupportedTypeError struct {
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %s", e.TypeName)
}

// OverflowError reports an integer or scale overflow during parse. Values
// never wrap silently.
type OverflowError struct {
	TypeName string
	Raw      string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%q overflows %s", e.Raw, e.TypeName)
}

// EncodingTypeMismatchError reports an attempt to encode a value whose shape
// is incompatible with the requested target type text.
type EncodingTypeMismatchError struct {
	Value  Value
	Target string
}

func (e *EncodingTypeMismatchError) Error() string {
	return fmt.Sprintf("cannot encode %T as %s", e.Value, e.Target)
}

func formatError(t *Type, raw, reason string) error {
	return &ValueFormatError{TypeName: t.Name(), Raw: raw, Reason: reason}
}
