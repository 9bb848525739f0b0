package format

import (
	"encoding/binary"
	"errors"
	"testing"
	"unicode/utf16"
)

func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[i*2:], u)
	}
	return b
}

func TestDecodeUTF16LE(t *testing.T) {
	cases := []string{
		"",
		"NOTEPAD.EXE",
		`\DEVICE\HARDDISKVOLUME3\WINDOWS`,
		"ümlaut",
		"emoji \U0001F600 pair", // forces a surrogate pair
	}
	for _, want := range cases {
		got, err := DecodeUTF16LE(encodeUTF16LE(want))
		if err != nil {
			t.Fatalf("DecodeUTF16LE(%q): %v", want, err)
		}
		if got != want {
			t.Fatalf("DecodeUTF16LE(%q) = %q", want, got)
		}
	}
}

func TestDecodeUTF16LEErrors(t *testing.T) {
	if _, err := DecodeUTF16LE([]byte{0x41}); !errors.Is(err, ErrDecode) {
		t.Fatalf("odd length: err = %v", err)
	}
	// High surrogate with no low surrogate following.
	if _, err := DecodeUTF16LE([]byte{0x00, 0xD8, 0x41, 0x00}); !errors.Is(err, ErrDecode) {
		t.Fatalf("unpaired high surrogate: err = %v", err)
	}
	// High surrogate at end of input.
	if _, err := DecodeUTF16LE([]byte{0x00, 0xD8}); !errors.Is(err, ErrDecode) {
		t.Fatalf("trailing high surrogate: err = %v", err)
	}
	// Stray low surrogate.
	if _, err := DecodeUTF16LE([]byte{0x00, 0xDC}); !errors.Is(err, ErrDecode) {
		t.Fatalf("stray low surrogate: err = %v", err)
	}
}

func TestDecodeUTF16LELenient(t *testing.T) {
	if got := DecodeUTF16LELenient(encodeUTF16LE("KERNEL32.DLL")); got != "KERNEL32.DLL" {
		t.Fatalf("lenient decode = %q", got)
	}
	// Malformed input substitutes rather than fails.
	got := DecodeUTF16LELenient([]byte{0x00, 0xD8, 0x41, 0x00})
	if got == "" {
		t.Fatalf("lenient decode of malformed input should not be empty")
	}
}
