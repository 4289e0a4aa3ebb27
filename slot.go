package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Slot is the durable location holding the encoded product list.
//
// Read returns an error matching fs.ErrNotExist when nothing was ever
// written. Write replaces the whole content, readers never observe a partial
// write.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// FileSlot stores the product list in a single file.
type FileSlot struct {
	Path string
}

func (s FileSlot) String() string { return s.Path }

func (s FileSlot) Read(_ context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Write writes data into a temporary file next to the slot and renames it
// over the slot.
func (s FileSlot) Write(_ context.Context, data []byte) (err error) {
	dir, base := filepath.Split(s.Path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", s.Path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", f.Name(), err)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("cannot sync %q: %w", f.Name(), err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("cannot close %q: %w", f.Name(), err)
	}
	if err = os.Chmod(f.Name(), 0644); err != nil {
		return fmt.Errorf("cannot chmod %q: %w", f.Name(), err)
	}
	if err = os.Rename(f.Name(), s.Path); err != nil {
		return fmt.Errorf("cannot replace %q: %w", s.Path, err)
	}
	return nil
}

// MemorySlot is a Slot kept in memory. Its zero value is an empty slot.
//
// ReadErr and WriteErr, when set, are returned by every Read and Write
// respectively. A failed Write leaves Data as is.
type MemorySlot struct {
	Data     []byte
	ReadErr  error
	WriteErr error
	Writes   int // number of successful writes
}

// NewMemorySlot returns a slot already holding data.
func NewMemorySlot(data string) *MemorySlot {
	return &MemorySlot{Data: []byte(data)}
}

func (s *MemorySlot) String() string { return "memory" }

func (s *MemorySlot) Read(_ context.Context) ([]byte, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	if s.Data == nil {
		return nil, fs.ErrNotExist
	}
	return bytes.Clone(s.Data), nil
}

func (s *MemorySlot) Write(_ context.Context, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Data = bytes.Clone(data)
	s.Writes++
	return nil
}
