package prefetch

import "os"

// File is an opened prefetch file, backed by mmap (linux/darwin) or a byte
// slice (others). The raw bytes are the compressed on-disk form; Parse runs
// the decode pipeline over them.
type File struct {
	f    *os.File
	data []byte
	size int64
}

// Bytes returns the raw (compressed) file contents.
func (f *File) Bytes() []byte { return f.data }

// Size returns the on-disk file size.
func (f *File) Size() int64 { return f.size }

// Parse decodes the file using the given Decompressor. The returned record
// is independent of the File and survives Close.
func (f *File) Parse(dec Decompressor) (*Prefetch, error) {
	return Parse(f.data, dec)
}

// Load opens, parses with the system decompressor, and closes path in one
// call.
func Load(path string) (*Prefetch, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Parse(SystemDecompressor())
}
