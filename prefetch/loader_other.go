//go:build !linux && !darwin

package prefetch

import (
	"fmt"
	"io"
	"os"
)

// Open loads the prefetch file into memory on platforms without the mmap
// loader.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("empty prefetch file: %s", path)
	}

	data := make([]byte, sz)
	if _, err := io.ReadFull(f, data); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &File{
		f:    f,
		data: data,
		size: sz,
	}, nil
}

func (f *File) Close() error {
	var err error
	if f.f != nil {
		err = f.f.Close()
		f.f = nil
	}
	f.data = nil
	return err
}
