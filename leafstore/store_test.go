package leafstore

import (
	"path/filepath"
	"testing"
)

func TestMarkAndCheckUsed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.leaves")

	s, err := Open(path, 8)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	used, err := s.IsUsed(3)
	if err != nil {
		t.Fatalf("IsUsed: %v", err)
	}
	if used {
		t.Fatalf("offset 3 reported used before MarkUsed")
	}

	if err := s.MarkUsed(3); err != nil {
		t.Fatalf("MarkUsed: %v", err)
	}

	used, err = s.IsUsed(3)
	if err != nil {
		t.Fatalf("IsUsed: %v", err)
	}
	if !used {
		t.Fatalf("offset 3 reported unused after MarkUsed")
	}

	used, err = s.IsUsed(4)
	if err != nil {
		t.Fatalf("IsUsed: %v", err)
	}
	if used {
		t.Fatalf("offset 4 reported used, expected untouched")
	}
}

func TestReopenPersistsBitmap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.leaves")

	s, err := Open(path, 16)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.MarkUsed(5); err != nil {
		t.Fatalf("MarkUsed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path, 16)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	used, err := s2.IsUsed(5)
	if err != nil {
		t.Fatalf("IsUsed after reopen: %v", err)
	}
	if !used {
		t.Fatalf("offset 5 lost its used mark across reopen")
	}
}

func TestReopenWithDifferentLeafCountFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.leaves")

	s, err := Open(path, 16)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := Open(path, 32); err == nil {
		t.Fatalf("Open with mismatched leaf count did not fail")
	}
}

func TestOffsetOutOfRangeRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.leaves")

	s, err := Open(path, 8)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.MarkUsed(100); err == nil {
		t.Fatalf("MarkUsed accepted an out-of-range offset")
	}
}
