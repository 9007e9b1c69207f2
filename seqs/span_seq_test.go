// Copyright (c) 2025 Visvasity LLC

package seqs

import (
	"cmp"
	"math/rand/v2"
	"testing"
)

func TestSpanSeqSortAndFind(t *testing.T) {
	block := make([]byte, 1024)
	s := NewSpanSeq(block)

	for i := 0; i < s.Cap(); i++ {
		begin := rand.Uint64N(1 << 32)
		w := s.Writer().AppendItem()
		w.SetBegin(begin)
		w.SetEnd(begin + 10)
	}

	s.Writer().SortItemsFunc(func(a, b Span) int {
		return cmp.Compare(a.Begin(), b.Begin())
	})

	for i := 1; i < s.Len(); i++ {
		if s.ItemAt(i-1).Begin() > s.ItemAt(i).Begin() {
			t.Fatalf("items are not sorted at index %d", i)
		}
	}

	for i := 0; i < s.Len(); i++ {
		key := s.ItemAt(i).Begin()
		j, ok := s.FindItemFunc(func(x Span) int {
			return cmp.Compare(key, x.Begin())
		})
		if !ok {
			t.Fatalf("wanted to find span with begin %d", key)
		}
		if got := s.ItemAt(j).Begin(); got != key {
			t.Fatalf("wanted %d, got %d", key, got)
		}
	}
}

func TestSpanSeqSwapItems(t *testing.T) {
	block := make([]byte, 256)
	s := NewSpanSeq(block)

	w0 := s.Writer().AppendItem()
	w0.SetBegin(1)
	w0.SetEnd(2)
	w1 := s.Writer().AppendItem()
	w1.SetBegin(3)
	w1.SetEnd(4)

	s.Writer().SwapItems(0, 1)

	if x := s.ItemAt(0).Begin(); x != 3 {
		t.Fatalf("wanted 3, got %d", x)
	}
	if x := s.ItemAt(1).End(); x != 2 {
		t.Fatalf("wanted 2, got %d", x)
	}
}
