package base64

import (
	"golang.org/x/exp/slices"
)

// Encode encodes src using RFC4648.
func Encode(src []byte) string {
	return RFC4648.EncodeToString(src)
}

// Decode decodes src using RFC4648.
//
// Bytes that are not part of the RFC 4648 alphabet are rejected.
func Decode(src string) ([]byte, error) {
	return RFC4648.DecodeString(src)
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// As a convenience, it returns the number of bytes written to
// dst.
func (s *Standard) Encode(dst, src []byte) int {
	n := 0
	for len(src) >= 3 {
		n += encodeBlock(dst[n:], src[:3], s)
		src = src[3:]
	}
	if len(src) > 0 {
		n += encodeBlock(dst[n:], src, s)
	}
	return n
}

// EncodeToString encodes src.
func (s *Standard) EncodeToString(src []byte) string {
	dst := make([]byte, s.EncodedLen(len(src)))
	s.Encode(dst, src)
	return string(dst)
}

// AppendEncode appends the encoding of src to dst and returns
// the extended slice.
func (s *Standard) AppendEncode(dst, src []byte) []byte {
	n := s.EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	s.Encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}

// encodeBlock encodes between one and three bytes from src into
// dst and returns the number of symbols written.
//
// Missing source bytes are treated as zero, but the symbols
// derived only from them are replaced with padding, or omitted
// if the Standard is unpadded.
func encodeBlock(dst, src []byte, s *Standard) int {
	switch len(src) {
	case 3:
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[3] = s.encode[v&0x3f]
		dst[2] = s.encode[v>>6&0x3f]
		dst[1] = s.encode[v>>12&0x3f]
		dst[0] = s.encode[v>>18&0x3f]
		return 4
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[2] = s.encode[v>>6&0x3f]
		dst[1] = s.encode[v>>12&0x3f]
		dst[0] = s.encode[v>>18&0x3f]
		if s.padChar == NoPadding {
			return 3
		}
		dst[3] = byte(s.padChar)
		return 4
	case 1:
		v := uint(src[0]) << 16
		dst[1] = s.encode[v>>12&0x3f]
		dst[0] = s.encode[v>>18&0x3f]
		if s.padChar == NoPadding {
			return 2
		}
		dst[3] = byte(s.padChar)
		dst[2] = byte(s.padChar)
		return 4
	}
	return 0
}

// Decode decodes src, writing at most DecodedLen(len(src))
// bytes to dst.
//
// It returns the number of bytes written to dst. If src
// contains invalid Base64, Decode returns a *CorruptInputError
// along with the number of bytes written before the error was
// found.
//
// Padding characters are never treated as data. Unless the
// Standard is strict, they may appear anywhere and in any
// number.
func (s *Standard) Decode(dst, src []byte) (n int, err error) {
	var (
		// buf holds the symbols of the current block.
		buf  [4]byte
		nbuf int
		// first is the offset of buf[0] in src.
		first int
		// last is the offset of the most recent symbol in src.
		last int
		nsym int
		npad int
	)
	for i, c := range src {
		switch {
		case s.decode[c] != invalid:
			if s.strict && npad > 0 {
				return n, &CorruptInputError{Offset: i, Err: ErrInvalidPadding}
			}
			if nbuf == 0 {
				first = i
			}
			buf[nbuf] = c
			nbuf++
			nsym++
			last = i
			if nbuf == len(buf) {
				n += decodeBlock(dst[n:], &buf, nbuf, s)
				nbuf = 0
			}
		case s.padChar != NoPadding && rune(c) == s.padChar:
			npad++
		case s.discard:
			// Noise.
		default:
			return n, &CorruptInputError{Offset: i, Char: c, Err: ErrInvalidCharacter}
		}
	}

	if nbuf == 1 {
		return n, &CorruptInputError{Offset: first, Err: ErrInvalidLength}
	}
	if s.strict {
		if !s.validPadding(nsym, npad) {
			return n, &CorruptInputError{Offset: len(src), Err: ErrInvalidPadding}
		}
		if nbuf > 0 && !zeroTrailingBits(&buf, nbuf, s) {
			return n, &CorruptInputError{Offset: last, Err: ErrInvalidPadding}
		}
	}
	if nbuf > 0 {
		n += decodeBlock(dst[n:], &buf, nbuf, s)
	}
	return n, nil
}

// DecodeString decodes src.
//
// Unlike Decode, it does not return partially decoded data when
// src is invalid.
func (s *Standard) DecodeString(src string) ([]byte, error) {
	dst := make([]byte, s.DecodedLen(len(src)))
	n, err := s.Decode(dst, []byte(src))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// AppendDecode appends the decoding of src to dst and returns
// the extended slice.
//
// If src is invalid, dst is returned unchanged along with the
// error.
func (s *Standard) AppendDecode(dst, src []byte) ([]byte, error) {
	size := s.DecodedLen(len(src))
	dst = slices.Grow(dst, size)
	n, err := s.Decode(dst[len(dst):len(dst)+size], src)
	if err != nil {
		return dst, err
	}
	return dst[:len(dst)+n], nil
}

// decodeBlock decodes the first m symbols of src, which must
// already be known to be in the alphabet, and writes the m-1
// recovered bytes to dst.
//
// m must be in [2, 4].
func decodeBlock(dst []byte, src *[4]byte, m int, s *Standard) int {
	var v uint
	switch m {
	case 4:
		v |= uint(s.decode[src[3]])
		fallthrough
	case 3:
		v |= uint(s.decode[src[2]]) << 6
		fallthrough
	case 2:
		v |= uint(s.decode[src[1]])<<12 | uint(s.decode[src[0]])<<18
	default:
		return 0
	}

	// The fixed width computation always produces three bytes,
	// but only the first m-1 carry data.
	b := [3]byte{
		byte(v >> 16 & 0xff),
		byte(v >> 8 & 0xff),
		byte(v & 0xff),
	}
	n := m - 1
	copy(dst[:n], b[:n])
	return n
}

// zeroTrailingBits reports whether the bits of a partial block
// that do not belong to any output byte are zero.
func zeroTrailingBits(src *[4]byte, m int, s *Standard) bool {
	switch m {
	case 3:
		// Low two bits of the third symbol.
		return s.decode[src[2]]&0x3 == 0
	case 2:
		// Low four bits of the second symbol.
		return s.decode[src[1]]&0xf == 0
	}
	return true
}

// validPadding reports whether nsym symbols followed by npad
// padding characters form canonical input.
func (s *Standard) validPadding(nsym, npad int) bool {
	if s.padChar == NoPadding {
		return npad == 0
	}
	if r := nsym % 4; r != 0 {
		return npad == 4-r
	}
	return npad == 0
}
