package base64

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestAlphabetBijection tests that every symbol of every
// predefined Standard decodes to its own ordinal.
func TestAlphabetBijection(t *testing.T) {
	for _, e := range encs {
		s := e.std
		var valid int
		for c := 0; c < 256; c++ {
			if s.decode[c] != invalid {
				valid++
			}
		}
		if valid != 64 {
			t.Fatalf("%s: expected 64 valid symbols, got %d", e.name, valid)
		}
		for i := 0; i < 64; i++ {
			c := s.encode[i]
			if got := s.decode[c]; got != byte(i) {
				t.Fatalf("%s: #%d: %q decodes to %d", e.name, i, c, got)
			}
		}
	}
}

func TestBuildDecodeTable(t *testing.T) {
	tab, err := buildDecodeTable(stdAlphabet)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 256; i++ {
		want := byte(invalid)
		switch c := byte(i); {
		case c >= 'A' && c <= 'Z':
			want = c - 'A'
		case c >= 'a' && c <= 'z':
			want = c - 'a' + 26
		case c >= '0' && c <= '9':
			want = c - '0' + 52
		case c == '+':
			want = 62
		case c == '/':
			want = 63
		}
		if tab[i] != want {
			t.Fatalf("#%d: expected %d, got %d", i, want, tab[i])
		}
	}
}

func TestNewStandard(t *testing.T) {
	const bcrypt = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	s, err := NewStandard("bcrypt", bcrypt, NoPadding, false)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "bcrypt" || s.Alphabet() != bcrypt {
		t.Fatalf("unexpected Standard: %q %q", s.Name(), s.Alphabet())
	}
	if s.Padding() != NoPadding || s.Discards() || s.IsStrict() {
		t.Fatalf("unexpected policy: %q %t %t", s.Padding(), s.Discards(), s.IsStrict())
	}
	// 0x00 0x00 0x00 -> "...."
	if got := s.EncodeToString([]byte{0, 0, 0}); got != "...." {
		t.Fatalf("expected %q, got %q", "....", got)
	}

	for i, tc := range []struct {
		alphabet string
		pad      rune
	}{
		{stdAlphabet[:63], StdPadding},
		{stdAlphabet + "!", StdPadding},
		{"A" + stdAlphabet[1:63] + "A", StdPadding},
		{stdAlphabet[:63] + "\n", NoPadding},
		{stdAlphabet[:63] + "\xe9", NoPadding},
		{stdAlphabet, '+'},
		{stdAlphabet, '\r'},
		{stdAlphabet, 0x100},
		{stdAlphabet, -2},
		{"", NoPadding},
	} {
		_, err := NewStandard("bad", tc.alphabet, tc.pad, false)
		if !errors.Is(err, ErrMalformedAlphabet) {
			t.Fatalf("#%d: expected %v, got %v", i, ErrMalformedAlphabet, err)
		}
	}
}

func TestDerivedStandards(t *testing.T) {
	l := RFC4648.Lenient()
	if !l.Discards() || RFC4648.Discards() {
		t.Fatal("Lenient modified the receiver")
	}
	s := RFC4648.Strict()
	if !s.IsStrict() || RFC4648.IsStrict() {
		t.Fatal("Strict modified the receiver")
	}

	p := RFC2152.WithPadding(StdPadding)
	if RFC2152.Padding() != NoPadding {
		t.Fatal("WithPadding modified the receiver")
	}
	if got, want := p.EncodeToString([]byte("M")), "TQ=="; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := RFC4648.WithPadding('.').EncodeToString([]byte("M")), "TQ.."; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	for _, r := range []rune{'A', '/', '\n', 0x100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("WithPadding(%q): expected a panic", r)
				}
			}()
			RFC4648.WithPadding(r)
		}()
	}
}

func TestRegistry(t *testing.T) {
	want := []string{"rfc2152", "rfc3501", "rfc4648", "rfc4648-url"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
	for _, e := range encs {
		s, ok := Lookup(e.std.Name())
		if !ok || s != e.std {
			t.Fatalf("Lookup(%q): expected %s", e.std.Name(), e.name)
		}
	}
	if _, ok := Lookup("rfc4648-lenient"); ok {
		t.Fatal("unexpected Standard")
	}
}

var sinkB byte

func BenchmarkBuildDecodeTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tab, err := buildDecodeTable(stdAlphabet)
		if err != nil {
			b.Fatal(err)
		}
		sinkB = tab[i%256]
	}
}
