// Package charset maps the encoding names accepted in config to
// golang.org/x/text encodings. SIE exports are single-byte encoded
// (PC8 per the SIE standard, Latin-1 from most web bookkeeping tools)
// and the tax authority expects SRU files in ISO-8859-1.
package charset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Default is used when no encoding is configured.
const Default = "iso-8859-1"

var byName = map[string]encoding.Encoding{
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"cp437":        charmap.CodePage437,
	"pc8":          charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
}

// Lookup returns the encoding for name. An empty name selects Default.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	enc, ok := byName[key]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return enc, nil
}

// Names returns the accepted encoding names.
func Names() []string {
	return []string{"iso-8859-1", "latin1", "windows-1252", "cp1252", "cp437", "pc8", "cp850", "utf-8", "utf8"}
}

// Decode reads all of r and decodes it to a UTF-8 string.
func Decode(r io.Reader, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(enc.NewDecoder().Reader(r))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return string(data), nil
}

// Encode converts UTF-8 text to the named encoding. Characters the
// encoding cannot represent are an error rather than silently replaced.
func Encode(s, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	data, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", name, err)
	}
	return data, nil
}
