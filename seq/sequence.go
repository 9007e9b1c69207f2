// Copyright (c) 2025 Visvasity LLC

// Package seq implements a growable sequence container over raw memory
// blocks. A Sequence owns one rawmem.Block and a live-element count;
// exactly the first Len slots of the block hold live values and every
// slot past them is zero. Single-threaded ownership is assumed
// throughout: no operation takes locks, and concurrent use of one
// Sequence without external synchronization is a contract violation.
//
// Operations that allocate or run element hooks return errors; passing
// an invalid position or removing from an empty sequence is a
// programming error and panics.
package seq

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/visvasity/seqgen/rawmem"
)

// Sequence is a dynamically-resizable sequence of T. The zero value is
// an empty sequence ready for use.
type Sequence[T any] struct {
	data rawmem.Block[T]
	size int
}

// New returns an empty sequence with zero capacity.
func New[T any]() *Sequence[T] {
	return new(Sequence[T])
}

// NewSize returns a sequence of n value-constructed elements in a block
// of exactly n slots. If constructing the k-th element fails, elements
// 0..k-1 are destroyed and the error is returned; no partial sequence
// leaks.
func NewSize[T any](n int) (*Sequence[T], error) {
	block, err := rawmem.New[T](n)
	if err != nil {
		return nil, err
	}
	s := &Sequence[T]{data: block}
	if err := s.constructRange(0, n); err != nil {
		s.data.Release()
		return nil, err
	}
	s.size = n
	return s, nil
}

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int {
	return s.size
}

// Cap returns the number of allocated slots.
func (s *Sequence[T]) Cap() int {
	return s.data.Capacity()
}

// At returns the element at position i, usable for both reads and
// writes. Assigning over a Cloner/Destroyer element through the pointer
// bypasses its hooks; such elements should be replaced with RemoveAt
// plus Insert instead.
func (s *Sequence[T]) At(i int) *T {
	if i < 0 || i >= s.size {
		panic(fmt.Sprintf("seq: index %d is out of range [0:%d]", i, s.size))
	}
	return s.data.Slot(i)
}

// All iterates the live elements by value, first to last. The iterator
// is invalidated by any capacity-changing operation.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, *s.data.Slot(i)) {
				return
			}
		}
	}
}

// Refs iterates the live elements by pointer for in-place mutation.
// Same invalidation contract as All.
func (s *Sequence[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, s.data.Slot(i)) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the sequence in a block of exactly Len
// slots. Element copies go through the Cloner hook when the type has
// one; a mid-copy failure destroys the partial copy and returns the
// error with the source untouched.
func (s *Sequence[T]) Clone() (*Sequence[T], error) {
	block, err := rawmem.New[T](s.size)
	if err != nil {
		return nil, err
	}
	out := &Sequence[T]{data: block}
	for i := 0; i < s.size; i++ {
		if err := cloneInto(out.data.Slot(i), s.data.Slot(i)); err != nil {
			out.destroyRange(0, i)
			out.data.Release()
			return nil, fmt.Errorf("seq: cloning element %d: %w", i, err)
		}
	}
	out.size = s.size
	return out, nil
}

// CopyFrom copy-assigns the contents of other into s. When other does
// not fit in the current capacity, a full copy is built first and
// swapped in, so a failure leaves s untouched. Otherwise the existing
// capacity is reused in place: the overlapping prefix is assigned over,
// then the surplus tail is destroyed or the extra elements are
// copy-constructed. A failure while constructing the extra tail keeps s
// valid at its old length with the prefix already overwritten.
func (s *Sequence[T]) CopyFrom(other *Sequence[T]) error {
	if s == other {
		return nil
	}
	if other.size > s.data.Capacity() {
		tmp, err := other.Clone()
		if err != nil {
			return err
		}
		s.Swap(tmp)
		tmp.Clear()
		tmp.data.Release()
		return nil
	}
	n := min(s.size, other.size)
	for i := 0; i < n; i++ {
		if err := assignInto(s.data.Slot(i), other.data.Slot(i)); err != nil {
			return fmt.Errorf("seq: assigning element %d: %w", i, err)
		}
	}
	if other.size < s.size {
		s.destroyRange(other.size, s.size)
	} else {
		for i := s.size; i < other.size; i++ {
			if err := cloneInto(s.data.Slot(i), other.data.Slot(i)); err != nil {
				s.destroyRange(s.size, i)
				return fmt.Errorf("seq: cloning element %d: %w", i, err)
			}
		}
	}
	s.size = other.size
	return nil
}

// Take moves the contents into a new sequence, leaving s empty with
// zero capacity and ready for reuse.
func (s *Sequence[T]) Take() *Sequence[T] {
	out := &Sequence[T]{data: s.data.Take(), size: s.size}
	s.size = 0
	return out
}

// MoveFrom destroys the current contents and takes over the other
// sequence's block. The source is left empty and reusable.
func (s *Sequence[T]) MoveFrom(other *Sequence[T]) {
	if s == other {
		return
	}
	s.Clear()
	s.data.Release()
	s.data = other.data.Take()
	s.size = other.size
	other.size = 0
}

// Swap exchanges contents with other in constant time. Never fails.
func (s *Sequence[T]) Swap(other *Sequence[T]) {
	s.data.Swap(&other.data)
	s.size, other.size = other.size, s.size
}

// Clear destroys all live elements. Capacity is retained.
func (s *Sequence[T]) Clear() {
	s.destroyRange(0, s.size)
	s.size = 0
}

// SortFunc sorts the live elements in place by cmp. Elements move
// between slots by plain assignment; each value keeps a single owner,
// so this is safe for Cloner types too.
func (s *Sequence[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(s.data.Range(0, s.size), cmp)
}

// FindFunc binary-searches a sequence sorted consistently with cmp.
func (s *Sequence[T]) FindFunc(cmp func(x T) int) (int, bool) {
	return sort.Find(s.size, func(i int) int { return cmp(*s.data.Slot(i)) })
}
