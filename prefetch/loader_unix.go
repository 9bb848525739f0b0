//go:build linux || darwin

package prefetch

import (
	"fmt"
	"os"
	"syscall"
)

// Open mmaps the prefetch file read-only. Prefetch files are small, but the
// mapping keeps Open allocation-free and the buffer page-cache backed.
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

	data, err := syscall.Mmap(
		int(f.Fd()),
		0,
		int(sz),
		syscall.PROT_READ,
		syscall.MAP_PRIVATE,
	)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	return &File{
		f:    f,
		data: data,
		size: sz,
	}, nil
}

// Close unmaps the file. Any *Prefetch produced by Parse remains valid: the
// decompressed buffer does not alias the mapping.
func (f *File) Close() error {
	var err error
	if f.data != nil {
		_ = syscall.Munmap(f.data)
		f.data = nil
	}
	if f.f != nil {
		err = f.f.Close()
		f.f = nil
	}
	return err
}
