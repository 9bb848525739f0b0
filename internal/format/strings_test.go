package format

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"testing"
	"unicode/utf16"
)

// putUTF16 writes s as UTF-16LE at off, returning the offset past the
// written code units (no terminator).
func putUTF16(b []byte, off int, s string) int {
	for _, u := range utf16.Encode([]rune(s)) {
		binary.LittleEndian.PutUint16(b[off:], u)
		off += 2
	}
	return off
}

// putUTF16Z writes s as UTF-16LE at off followed by a NUL terminator.
func putUTF16Z(b []byte, off int, s string) int {
	off = putUTF16(b, off, s)
	binary.LittleEndian.PutUint16(b[off:], 0)
	return off + 2
}

func TestReadDirectoryStrings(t *testing.T) {
	b := make([]byte, 2048)
	// Table base 1000, strings at relative offset 200 => absolute 1200.
	off := putUTF16Z(b, 1200, `\VOLUME{01d5e1a2b3c4d5e6-a0b1c2d3}\WINDOWS`)
	putUTF16Z(b, off, `\VOLUME{01d5e1a2b3c4d5e6-a0b1c2d3}\WINDOWS\SYSTEM32`)

	got := ReadDirectoryStrings(b, 1000, 200, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != `\VOLUME{01d5e1a2b3c4d5e6-a0b1c2d3}\WINDOWS` {
		t.Fatalf("first = %q", got[0])
	}
	if got[1] != `\VOLUME{01d5e1a2b3c4d5e6-a0b1c2d3}\WINDOWS\SYSTEM32` {
		t.Fatalf("second = %q", got[1])
	}
}

func TestReadDirectoryStringsDoubleRelativeBase(t *testing.T) {
	// Strings live only at tableBase+relOff; planting decoys at relOff and
	// elsewhere catches a decoder that resolves the offset against the
	// wrong base.
	b := make([]byte, 2048)
	putUTF16Z(b, 200, `\WRONG\ABSOLUTE`)
	putUTF16Z(b, 1200, `\RIGHT\DIR`)

	got := ReadDirectoryStrings(b, 1000, 200, 1)
	if len(got) != 1 || got[0] != `\RIGHT\DIR` {
		t.Fatalf("got = %v, want [\\RIGHT\\DIR]", got)
	}
}

func TestReadDirectoryStringsMissingTerminator(t *testing.T) {
	b := make([]byte, 64)
	off := putUTF16Z(b, 0, `\DIR\ONE`)
	// Second string runs to the end of the buffer with no terminator.
	for o := off; o+1 < len(b); o += 2 {
		binary.LittleEndian.PutUint16(b[o:], 'B')
	}

	got := ReadDirectoryStrings(b, 0, 0, 2)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (second string unterminated)", len(got))
	}
	if got[0] != `\DIR\ONE` {
		t.Fatalf("first = %q", got[0])
	}
}

func TestReadDirectoryStringsBadSequencePlaceholder(t *testing.T) {
	b := make([]byte, 64)
	// Unpaired high surrogate, then a terminator, then a good string.
	binary.LittleEndian.PutUint16(b[0:], 0xD800)
	binary.LittleEndian.PutUint16(b[2:], 0)
	putUTF16Z(b, 4, `\GOOD`)

	got := ReadDirectoryStrings(b, 0, 0, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	want := fmt.Sprintf("<decode error: %s>", hex.EncodeToString([]byte{0x00, 0xD8}))
	if got[0] != want {
		t.Fatalf("placeholder = %q, want %q", got[0], want)
	}
	if got[1] != `\GOOD` {
		t.Fatalf("second = %q", got[1])
	}
}

func TestReadDirectoryStringsZeroCount(t *testing.T) {
	b := make([]byte, 16)
	if got := ReadDirectoryStrings(b, 0, 0, 0); len(got) != 0 {
		t.Fatalf("zero count should yield an empty sequence, got %v", got)
	}
}

func TestReadStringBlob(t *testing.T) {
	b := make([]byte, 256)
	off := putUTF16Z(b, 16, `\WINDOWS\SYSTEM32\NTDLL.DLL`)
	end := putUTF16Z(b, off, `\WINDOWS\SYSTEM32\KERNEL32.DLL`)

	got := ReadStringBlob(b, 16, end-16)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != `\WINDOWS\SYSTEM32\NTDLL.DLL` || got[1] != `\WINDOWS\SYSTEM32\KERNEL32.DLL` {
		t.Fatalf("got = %v", got)
	}
}

func TestReadStringBlobTruncatedFinalEntry(t *testing.T) {
	b := make([]byte, 64)
	off := putUTF16Z(b, 0, `\A`)
	putUTF16(b, off, `\TRUNCATED`)

	// Size cuts the second string short of its terminator.
	got := ReadStringBlob(b, 0, off+8)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != `\A` {
		t.Fatalf("first = %q", got[0])
	}
	if got[1] != `\TRU` {
		t.Fatalf("second = %q, want truncated prefix", got[1])
	}
}

func TestReadStringBlobOutOfRange(t *testing.T) {
	b := make([]byte, 8)
	if got := ReadStringBlob(b, 16, 8); got != nil {
		t.Fatalf("out-of-range blob should be nil, got %v", got)
	}
	if got := ReadStringBlob(b, 0, 0); got != nil {
		t.Fatalf("zero-size blob should be nil, got %v", got)
	}
}
