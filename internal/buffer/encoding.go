// internal/buffer/encoding.go
package buffer

import (
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names reported by Buffer.Encoding after a load.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin-1"
)

// decodeContent interprets raw file bytes as text. UTF-8 is the primary
// encoding; bytes that are not valid UTF-8 get one retry as Latin-1
// (ISO 8859-1), in which every byte sequence is decodable.
func decodeContent(raw []byte) ([]byte, string, error) {
	if utf8.Valid(raw) {
		return raw, EncodingUTF8, nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, "", fmt.Errorf("latin-1 fallback decode failed: %w", err)
	}
	return decoded, EncodingLatin1, nil
}

// DefaultSaveName suggests a timestamp-derived filename for an unbound buffer.
func DefaultSaveName() string {
	return time.Now().Format("20060102_150405") + ".py"
}
