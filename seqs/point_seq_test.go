// Copyright (c) 2025 Visvasity LLC

package seqs

import (
	"testing"
)

func appendPoint(t *testing.T, s PointSeq, x, y int32) {
	t.Helper()
	w := s.Writer().AppendItem()
	w.SetX(x)
	w.SetY(y)
}

func pointXs(s PointSeq) []int32 {
	var xs []int32
	for _, item := range s.AllItems() {
		xs = append(xs, item.X())
	}
	return xs
}

func TestPointSeqInsert(t *testing.T) {
	block := make([]byte, 256)
	s := NewPointSeq(block)
	appendPoint(t, s, 1, 1)
	appendPoint(t, s, 2, 2)
	appendPoint(t, s, 3, 3)

	w := s.Writer().InsertItemAt(1)
	if !w.Reader().IsZero() {
		t.Fatalf("inserted item must be zero-initialized")
	}
	w.SetX(99)

	want := []int32{1, 99, 2, 3}
	got := pointXs(s)
	if len(got) != len(want) {
		t.Fatalf("wanted %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wanted %v, got %v", want, got)
		}
	}

	// Insert at the end position behaves like append.
	s.Writer().InsertItemAt(s.Len()).SetX(5)
	if x := s.ItemAt(s.Len() - 1).X(); x != 5 {
		t.Fatalf("wanted 5, got %d", x)
	}
}

func TestPointSeqRemove(t *testing.T) {
	block := make([]byte, 256)
	s := NewPointSeq(block)
	for i := int32(1); i <= 4; i++ {
		appendPoint(t, s, i, i)
	}

	s.Writer().RemoveItemAt(1)
	want := []int32{1, 3, 4}
	got := pointXs(s)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wanted %v, got %v", want, got)
		}
	}

	// Freed tail slot must be zeroed out.
	s.Writer().AppendItem()
	if !s.ItemAt(3).IsZero() {
		t.Fatalf("freed slot must be zero")
	}
}

func TestPointSeqDeleteItems(t *testing.T) {
	block := make([]byte, 256)
	s := NewPointSeq(block)
	for i := int32(0); i < 4; i++ {
		appendPoint(t, s, i, i)
	}

	// Delete a range.
	s.Writer().DeleteItems(1, 3)

	if n := s.Len(); n != 2 {
		t.Fatalf("wanted 2, got %d", n)
	}
	if x := s.ItemAt(0).X(); x != 0 {
		t.Fatalf("wanted 0, got %d", x)
	}
	if x := s.ItemAt(1).X(); x != 3 {
		t.Fatalf("wanted 3, got %d", x)
	}

	// Empty range is a no-op.
	s.Writer().DeleteItems(1, 1)
	if n := s.Len(); n != 2 {
		t.Fatalf("wanted 2, got %d", n)
	}
}

func TestPointSeqIndexPanics(t *testing.T) {
	block := make([]byte, 256)
	s := NewPointSeq(block)
	appendPoint(t, s, 1, 1)

	defer func() {
		if recover() == nil {
			t.Fatalf("out of range item access must panic")
		}
	}()
	s.ItemAt(1)
}
