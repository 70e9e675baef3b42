package crypto

import "encoding/base64"

// legacyMinLength is the shortest string the heuristic will consider. A real
// envelope is at least 96 bytes, i.e. 128 base64 characters.
const legacyMinLength = 128

// LooksEncrypted reports whether value plausibly is an [Envelope].
//
// Rows written before encryption at rest carry plaintext and have no marker,
// so this is a heuristic, applied in order:
//  1. shorter than 128 characters: plaintext;
//  2. anything outside [A-Za-z0-9+/] with trailing '=' padding: plaintext;
//  3. decodes to fewer than 96 bytes: plaintext.
//
// A string that passes all three may still not be an envelope; callers must
// tolerate the subsequent unwrap failing.
func LooksEncrypted(value string) bool {
	if len(value) < legacyMinLength {
		return false
	}
	if !isBase64Alphabet(value) {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return false
	}
	return len(decoded) >= EnvelopeMinSize
}

func isBase64Alphabet(s string) bool {
	padding := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '=':
			padding++
		case padding > 0:
			// data after padding
			return false
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '+', c == '/':
		default:
			return false
		}
	}
	return padding <= 2
}
