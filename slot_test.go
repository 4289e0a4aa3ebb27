package inventory

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSlot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	slot := FileSlot{Path: filepath.Join(dir, "products.json")}

	if _, err := slot.Read(ctx); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Read() on a new slot error = %v, want fs.ErrNotExist", err)
	}

	for _, content := range []string{"[]\n", "[\n{\"name\":\"A\"}\n]\n"} {
		if err := slot.Write(ctx, []byte(content)); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		got, err := slot.Read(ctx)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if string(got) != content {
			t.Errorf("Read() = %q, want %q", got, content)
		}
	}

	// no temporary file is left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("slot directory has %d entries, want 1", len(entries))
	}
}

func TestFileSlot_WriteFailure(t *testing.T) {
	slot := FileSlot{Path: filepath.Join(t.TempDir(), "missing", "products.json")}
	if err := slot.Write(context.Background(), []byte("[]")); err == nil {
		t.Error("Write() in a missing directory expected an error")
	}
}

func TestStore_FileSlot(t *testing.T) {
	ctx := context.Background()
	slot := FileSlot{Path: filepath.Join(t.TempDir(), "products.json")}

	s := mustOpen(t, slot)
	if _, err := s.Add(ctx, NewProduct("A", 100, 150, 10)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	reloaded := mustOpen(t, slot)
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded Len() = %d, want 1", reloaded.Len())
	}
	got, _ := reloaded.At(0)
	want, _ := s.At(0)
	if !got.Equal(want) {
		t.Errorf("reloaded product = %+v, want %+v", got, want)
	}
}
