// Copyright (c) 2025 Visvasity LLC

package seq

import (
	"fmt"
	"math"

	"github.com/visvasity/seqgen/rawmem"
)

// Reserve grows the block to exactly capacity slots, transferring the
// live elements into it. A no-op when capacity does not exceed the
// current one. On any failure the sequence is left exactly as it was.
func (s *Sequence[T]) Reserve(capacity int) error {
	if capacity <= s.data.Capacity() {
		return nil
	}
	nb, err := rawmem.New[T](capacity)
	if err != nil {
		return err
	}
	if err := s.transfer(&nb, 0, s.size, 0); err != nil {
		nb.Release()
		return err
	}
	s.install(&nb)
	return nil
}

// Resize sets the live-element count to n. Shrinking destroys the
// trailing elements and keeps capacity. Growing doubles capacity from 1
// as needed and value-constructs the added slots.
func (s *Sequence[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("seq: resize to negative size %d", n))
	}
	switch {
	case n < s.size:
		s.destroyRange(n, s.size)
		s.size = n
	case n > s.size:
		if n > s.data.Capacity() {
			if err := s.Reserve(growCapacity(s.data.Capacity(), n)); err != nil {
				return err
			}
		}
		if err := s.constructRange(s.size, n); err != nil {
			return err
		}
		s.size = n
	}
	return nil
}

// Append adds v after the last element, growing the block by doubling
// when full, and returns the new element's slot. On failure the caller
// keeps ownership of v and the sequence is unchanged.
func (s *Sequence[T]) Append(v T) (*T, error) {
	if s.size < s.data.Capacity() {
		p := s.data.Slot(s.size)
		*p = v
		s.size++
		return p, nil
	}
	nb, err := rawmem.New[T](growCapacity(s.data.Capacity(), s.size+1))
	if err != nil {
		return nil, err
	}
	*nb.Slot(s.size) = v
	if err := s.transfer(&nb, 0, s.size, 0); err != nil {
		// v was only bit-copied; ownership stays with the caller, so
		// the staged slot is dropped without running hooks.
		nb.Release()
		return nil, err
	}
	s.install(&nb)
	s.size++
	return s.data.Slot(s.size - 1), nil
}

// AppendFunc constructs a new last element in place with init. The slot
// starts as the zero value; a failed init wipes it and reports the
// error with the sequence unchanged. init must not touch the sequence
// itself.
func (s *Sequence[T]) AppendFunc(init func(*T) error) (*T, error) {
	if s.size < s.data.Capacity() {
		p := s.data.Slot(s.size)
		if err := init(p); err != nil {
			s.data.Wipe(s.size, s.size+1)
			return nil, fmt.Errorf("seq: constructing element %d: %w", s.size, err)
		}
		s.size++
		return p, nil
	}
	nb, err := rawmem.New[T](growCapacity(s.data.Capacity(), s.size+1))
	if err != nil {
		return nil, err
	}
	if err := init(nb.Slot(s.size)); err != nil {
		nb.Release()
		return nil, fmt.Errorf("seq: constructing element %d: %w", s.size, err)
	}
	if err := s.transfer(&nb, 0, s.size, 0); err != nil {
		destroySlots(nb.Range(s.size, s.size+1))
		nb.Release()
		return nil, err
	}
	s.install(&nb)
	s.size++
	return s.data.Slot(s.size - 1), nil
}

// RemoveLast destroys the last element. Calling it on an empty sequence
// is a contract violation.
func (s *Sequence[T]) RemoveLast() {
	if s.size == 0 {
		panic("seq: remove from empty sequence")
	}
	s.destroyRange(s.size-1, s.size)
	s.size--
}

// Insert places v at position i, shifting the elements at and after i
// one slot right. Position Len is valid and appends.
func (s *Sequence[T]) Insert(i int, v T) (*T, error) {
	return s.InsertFunc(i, func(p *T) error { *p = v; return nil })
}

// InsertFunc constructs a new element at position i with init.
//
// With spare capacity the tail is shifted right and init runs in the
// vacated slot; a failure shifts the tail back. When the block is full,
// the new element is constructed first in its final slot of the new
// block, so a failed init touches nothing; the surrounding elements are
// then transferred around it, and a failure in either transfer phase
// destroys whatever was staged in the new block and leaves the original
// intact. init must not touch the sequence itself.
func (s *Sequence[T]) InsertFunc(i int, init func(*T) error) (*T, error) {
	if i < 0 || i > s.size {
		panic(fmt.Sprintf("seq: insert position %d is out of range [0:%d]", i, s.size))
	}
	if i == s.size {
		return s.AppendFunc(init)
	}
	if s.size < s.data.Capacity() {
		copy(s.data.Range(i+1, s.size+1), s.data.Range(i, s.size))
		s.data.Wipe(i, i+1)
		if err := init(s.data.Slot(i)); err != nil {
			copy(s.data.Range(i, s.size), s.data.Range(i+1, s.size+1))
			s.data.Wipe(s.size, s.size+1)
			return nil, fmt.Errorf("seq: constructing element %d: %w", i, err)
		}
		s.size++
		return s.data.Slot(i), nil
	}
	nb, err := rawmem.New[T](growCapacity(s.data.Capacity(), s.size+1))
	if err != nil {
		return nil, err
	}
	if err := init(nb.Slot(i)); err != nil {
		nb.Release()
		return nil, fmt.Errorf("seq: constructing element %d: %w", i, err)
	}
	if err := s.transfer(&nb, 0, i, 0); err != nil {
		destroySlots(nb.Range(i, i+1))
		nb.Release()
		return nil, err
	}
	if err := s.transfer(&nb, i, s.size, i+1); err != nil {
		destroySlots(nb.Range(0, i+1))
		nb.Release()
		return nil, err
	}
	s.install(&nb)
	s.size++
	return s.data.Slot(i), nil
}

// RemoveAt destroys the element at position i, shifting the following
// elements one slot left, and returns the position now holding the
// element that followed the removed one (or Len if the last element was
// removed). Position Len itself is a contract violation.
func (s *Sequence[T]) RemoveAt(i int) int {
	if i < 0 || i >= s.size {
		panic(fmt.Sprintf("seq: remove position %d is out of range [0:%d]", i, s.size))
	}
	if capsFor[T]().destroy {
		any(s.data.Slot(i)).(Destroyer).Destroy()
	}
	copy(s.data.Range(i, s.size-1), s.data.Range(i+1, s.size))
	s.data.Wipe(s.size-1, s.size)
	s.size--
	return i
}

// growCapacity doubles cur, starting from 1, until it covers need.
func growCapacity(cur, need int) int {
	c := cur
	if c == 0 {
		c = 1
	}
	for c < need {
		if c > math.MaxInt/2 {
			return need
		}
		c *= 2
	}
	return c
}

// transfer stages the live elements [lo:hi] into nb starting at slot
// base. Plain and Relocatable types relocate by assignment, which never
// fails; Cloner types are cloned, and a mid-clone failure destroys the
// clones staged so far before reporting, leaving the source block
// fully live.
func (s *Sequence[T]) transfer(nb *rawmem.Block[T], lo, hi, base int) error {
	dst := nb.Range(base, base+hi-lo)
	if !transferClones[T]() {
		copy(dst, s.data.Range(lo, hi))
		return nil
	}
	src := s.data.Range(lo, hi)
	for i := range src {
		v, err := any(&src[i]).(Cloner[T]).Clone()
		if err != nil {
			destroySlots(dst[:i])
			return fmt.Errorf("seq: cloning element %d: %w", lo+i, err)
		}
		dst[i] = v
	}
	return nil
}

// install replaces the current block with nb after a successful
// transfer of all live elements. Cloned originals still own their state
// and are destroyed; relocated originals moved with the bits and are
// simply dropped with the old block.
func (s *Sequence[T]) install(nb *rawmem.Block[T]) {
	if transferClones[T]() {
		s.destroyRange(0, s.size)
	}
	s.data.Swap(nb)
	nb.Release()
}

func transferClones[T any]() bool {
	c := capsFor[T]()
	return c.clone && !c.relocate
}

// constructRange value-constructs the slots [lo:hi]: they are already
// zero by the block invariant, and the Initializer hook, when present,
// runs on each. A failure destroys the elements constructed so far.
func (s *Sequence[T]) constructRange(lo, hi int) error {
	if !capsFor[T]().init {
		return nil
	}
	for i := lo; i < hi; i++ {
		if err := any(s.data.Slot(i)).(Initializer).Init(); err != nil {
			s.data.Wipe(i, i+1)
			s.destroyRange(lo, i)
			return fmt.Errorf("seq: constructing element %d: %w", i, err)
		}
	}
	return nil
}

// destroyRange runs the Destroyer hook, when present, on the live slots
// [lo:hi] and wipes them back to the zero value.
func (s *Sequence[T]) destroyRange(lo, hi int) {
	destroySlots(s.data.Range(lo, hi))
}

func destroySlots[T any](vs []T) {
	if capsFor[T]().destroy {
		for i := range vs {
			any(&vs[i]).(Destroyer).Destroy()
		}
	}
	clear(vs)
}

func cloneInto[T any](dst, src *T) error {
	if capsFor[T]().clone {
		v, err := any(src).(Cloner[T]).Clone()
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	*dst = *src
	return nil
}

// assignInto copy-assigns over a live destination element: the clone is
// taken first so a failure leaves the destination's old value intact.
func assignInto[T any](dst, src *T) error {
	c := capsFor[T]()
	if !c.clone {
		*dst = *src
		return nil
	}
	v, err := any(src).(Cloner[T]).Clone()
	if err != nil {
		return err
	}
	if c.destroy {
		any(dst).(Destroyer).Destroy()
	}
	*dst = v
	return nil
}
