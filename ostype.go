package finderinfo

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// OSType is a four byte type or creator code
type OSType [4]byte

// ParseOSType makes a code from a four byte string
func ParseOSType(s string) (OSType, error) {
	var t OSType
	if len(s) != len(t) {
		return t, fmt.Errorf("type code %q must be 4 bytes", s)
	}
	copy(t[:], s)
	return t, nil
}

// String quotes the code as UTF-8. Codes that are not valid UTF-8 are shown
// as hex and never fail.
func (t OSType) String() string {
	s, _, err := transform.String(encoding.UTF8Validator, string(t[:]))
	if err != nil {
		return fmt.Sprintf("<invalid 0x%x>", t[:])
	}
	return fmt.Sprintf("%q", s)
}

// MacRoman decodes the code with the classic Mac OS character set, where
// every byte maps to a character.
func (t OSType) MacRoman() string {
	s, _, err := transform.String(charmap.Macintosh.NewDecoder(), string(t[:]))
	if err != nil {
		return string(t[:])
	}
	return s
}
