package crypto

import (
	"encoding/base64"
	"fmt"
)

// EncodeBase64 encodes b with the standard padded base64 alphabet.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 reverses [EncodeBase64]. The bytes are returned exactly as
// they were encoded; no text reinterpretation takes place.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return b, nil
}
