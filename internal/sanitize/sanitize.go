// Package sanitize renders untrusted values as SQL literal text.
package sanitize

import "encoding/hex"

// QuoteString appends str to dst as a single-quoted SQL string literal.
// Both the quote character and backslash are doubled, so the result is safe
// regardless of the server's escape-string setting.
func QuoteString(dst []byte, str string) []byte {
	dst = append(dst, '\'')
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c == '\'' || c == '\\' {
			dst = append(dst, c)
		}
		dst = append(dst, c)
	}
	return append(dst, '\'')
}

// QuoteBytes appends buf to dst as a HEX_TO_BINARY call, the one binary
// spelling the server accepts in every context a literal can appear in.
func QuoteBytes(dst, buf []byte) []byte {
	dst = append(dst, "HEX_TO_BINARY('0x"...)
	dst = append(dst, hex.EncodeToString(buf)...)
	return append(dst, "')"...)
}
