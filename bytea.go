package vtype

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// decodeBytes accepts the wire hex-escape text (\xHH escapes with literal
// printable bytes), a bare 0x hex string, and the encoder's own
// HEX_TO_BINARY('0x...') call form. BINARY values are right-padded with NUL
// to the declared length.
func decodeBytes(s string, t *Type) (Value, error) {
	raw, err := parseBytesText(s)
	if err != nil {
		return nil, formatError(t, s, err.Error())
	}
	if t.Kind == BinaryKind && t.Length > 0 {
		for len(raw) < int(t.Length) {
			raw = append(raw, 0)
		}
	}
	return Bytes(raw), nil
}

func parseBytesText(s string) ([]byte, error) {
	const call = "HEX_TO_BINARY("
	if len(s) >= len(call) && strings.EqualFold(s[:len(call)], call) {
		end := strings.LastIndexByte(s, ')')
		if end < 0 {
			return nil, errors.New("unterminated HEX_TO_BINARY call")
		}
		inner := strings.TrimSpace(s[len(call):end])
		if len(inner) >= 2 && inner[0] == '\'' && inner[len(inner)-1] == '\'' {
			inner = inner[1 : len(inner)-1]
		}
		s = inner
	}
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		raw, err := hex.DecodeString(s[2:])
		if err != nil {
			return nil, fmt.Errorf("bad hex: %v", err)
		}
		return raw, nil
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if i+1 < len(s) && s[i+1] == '\\' {
			out = append(out, '\\')
			i++
			continue
		}
		if i+3 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X') {
			b, err := hex.DecodeString(s[i+2 : i+4])
			if err == nil {
				out = append(out, b[0])
				i += 3
				continue
			}
		}
		return nil, fmt.Errorf("bad byte escape at offset %d", i)
	}
	return out, nil
}
