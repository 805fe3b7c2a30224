package base64

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	StdPadding rune = '=' // standard padding '='
	NoPadding  rune = -1  // no padding
)

// invalid marks a decode table entry for a byte that is not in
// the alphabet.
const invalid = 0xff

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+/"

	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"-_"

	imapAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+,"
)

// RFC4648 is the standard Base64 encoding from section 4 of
// RFC 4648.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
// and pads with '='.
var RFC4648 = mustStandard("rfc4648", stdAlphabet, StdPadding)

// RFC4648URL is the URL and filename safe Base64 encoding from
// section 5 of RFC 4648.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    -_
//
// and pads with '='.
var RFC4648URL = mustStandard("rfc4648-url", urlAlphabet, StdPadding)

// RFC3501 is the modified Base64 used by IMAP mailbox names
// (section 5.1.3 of RFC 3501).
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +,
//
// and is not padded.
var RFC3501 = mustStandard("rfc3501", imapAlphabet, NoPadding)

// RFC2152 is the Base64 used by UTF-7.
//
// It uses the same table as RFC4648 but is not padded.
var RFC2152 = mustStandard("rfc2152", stdAlphabet, NoPadding)

var registry = map[string]*Standard{
	RFC4648.name:    RFC4648,
	RFC4648URL.name: RFC4648URL,
	RFC3501.name:    RFC3501,
	RFC2152.name:    RFC2152,
}

// Lookup returns the predefined Standard with the provided name.
func Lookup(name string) (*Standard, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the names of the predefined Standards in sorted
// order.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// Standard is a particular Base64 alphabet paired with
// a padding and validation policy.
//
// A Standard is immutable and safe for concurrent use.
type Standard struct {
	name    string
	encode  [64]byte
	decode  [256]byte
	padChar rune
	// discard causes decoding to skip bytes that are neither
	// in the alphabet nor the padding character.
	discard bool
	// strict enables canonical form checks during decoding.
	strict bool
}

func mustStandard(name, alphabet string, padChar rune) *Standard {
	s, err := NewStandard(name, alphabet, padChar, false)
	if err != nil {
		panic(err)
	}
	return s
}

// NewStandard creates a Standard from a 64-symbol alphabet.
//
// The alphabet must be exactly 64 distinct ASCII bytes and must
// not contain '\r' or '\n'. The padding character must be
// NoPadding or a byte that is not in the alphabet.
//
// If discard is true, decoding silently skips bytes that are not
// part of the alphabet.
func NewStandard(name, alphabet string, padChar rune, discard bool) (*Standard, error) {
	if err := checkPadding(alphabet, padChar); err != nil {
		return nil, err
	}
	decode, err := buildDecodeTable(alphabet)
	if err != nil {
		return nil, err
	}
	s := &Standard{
		name:    name,
		decode:  *decode,
		padChar: padChar,
		discard: discard,
	}
	copy(s.encode[:], alphabet)
	return s, nil
}

func checkPadding(alphabet string, r rune) error {
	if r == NoPadding {
		return nil
	}
	switch {
	case r == '\r', r == '\n', r < 0, r > 0xff:
		return fmt.Errorf("%w: invalid padding %q", ErrMalformedAlphabet, r)
	case strings.IndexByte(alphabet, byte(r)) >= 0:
		return fmt.Errorf("%w: padding %q contained in alphabet", ErrMalformedAlphabet, r)
	}
	return nil
}

// buildDecodeTable maps each byte to its ordinal in alphabet, or
// to invalid if the byte is not in alphabet.
func buildDecodeTable(alphabet string) (*[256]byte, error) {
	if len(alphabet) != 64 {
		return nil, fmt.Errorf("%w: have %d symbols, need 64",
			ErrMalformedAlphabet, len(alphabet))
	}
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		switch {
		case c == '\r', c == '\n', c >= 0x80:
			return nil, fmt.Errorf("%w: invalid symbol %q", ErrMalformedAlphabet, c)
		case t[c] != invalid:
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrMalformedAlphabet, c)
		}
		t[c] = byte(i)
	}
	return &t, nil
}

// Lenient returns an identical Standard that skips bytes which
// are not part of the alphabet instead of rejecting them.
func (s Standard) Lenient() *Standard {
	s.discard = true
	return &s
}

// Strict returns an identical Standard that only accepts
// canonical input: padding, when used, must be present, must
// only appear at the end, and all unused trailing bits must be
// zero (see section 3.5 of RFC 4648).
func (s Standard) Strict() *Standard {
	s.strict = true
	return &s
}

// WithPadding returns an identical Standard that uses the
// specified padding character, or NoPadding.
//
// The padding character must be less than 0xff and cannot be
// '\r', '\n', or a character in the Standard's alphabet.
func (s Standard) WithPadding(r rune) *Standard {
	if err := checkPadding(string(s.encode[:]), r); err != nil {
		panic(err)
	}
	s.padChar = r
	return &s
}

// Name returns the name the Standard was created with.
func (s *Standard) Name() string {
	return s.name
}

// Alphabet returns the 64 symbols of the Standard in ordinal
// order.
func (s *Standard) Alphabet() string {
	return string(s.encode[:])
}

// Padding returns the padding character, or NoPadding.
func (s *Standard) Padding() rune {
	return s.padChar
}

// Discards reports whether decoding skips bytes outside of the
// alphabet.
func (s *Standard) Discards() bool {
	return s.discard
}

// IsStrict reports whether decoding only accepts canonical
// input.
func (s *Standard) IsStrict() bool {
	return s.strict
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (s *Standard) EncodedLen(n int) int {
	if s.padChar == NoPadding {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the data
// decoded from n bytes of Base64-encoded input.
//
// Unlike EncodedLen it does not depend on the padding since
// lenient Standards accept missing padding.
func (s *Standard) DecodedLen(n int) int {
	return n/4*3 + (n%4*3+3)/4
}
