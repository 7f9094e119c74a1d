package vtype

import "github.com/gofrs/uuid"

// decodeUUID accepts the canonical 8-4-4-4-12 form, case-insensitive.
func decodeUUID(s string, t *Type) (Value, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return nil, formatError(t, s, "not a uuid")
	}
	return UUID{UUID: u}, nil
}

func encodeUUID(v UUID) string {
	return "'" + v.String() + "'"
}
