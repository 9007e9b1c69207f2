// Copyright (c) 2025 Visvasity LLC

// Package rawmem provides fixed-capacity element slot storage with no
// element liveness bookkeeping. A Block reserves room for a number of
// slots of the element type; which slots hold meaningful values is
// entirely the owner's business. Using a slot the owner has not marked
// live produces undefined results, same as reading reclaimed memory.
package rawmem

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoMemory is reported when a block of the requested capacity cannot
// be represented or reserved.
var ErrNoMemory = errors.New("rawmem: cannot allocate block of requested capacity")

// Block owns storage for a fixed number of element slots. The zero value
// is an empty block with no storage. Blocks must not be copied; ownership
// moves with Take or Swap.
type Block[T any] struct {
	slots []T
}

// New reserves storage for the given number of slots. Zero capacity
// performs no allocation and returns an empty block.
func New[T any](capacity int) (Block[T], error) {
	if capacity < 0 {
		return Block[T]{}, fmt.Errorf("rawmem: capacity %d is negative: %w", capacity, ErrNoMemory)
	}
	if capacity == 0 {
		return Block[T]{}, nil
	}
	if size := SizeFor[T](); size > 0 && capacity > math.MaxInt/size {
		return Block[T]{}, fmt.Errorf("rawmem: capacity %d overflows addressable size: %w", capacity, ErrNoMemory)
	}
	return Block[T]{slots: make([]T, capacity)}, nil
}

// Capacity returns the number of slots in the block.
func (b *Block[T]) Capacity() int {
	return len(b.slots)
}

// Slot returns the slot at index i. The slot may hold a dead value; the
// caller tracks liveness.
func (b *Block[T]) Slot(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("rawmem: slot index %d is out of range [0:%d]", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Range returns the raw slot window [i:j]. The one-past-the-end offset
// is valid for both bounds, so Range(c, c) on a block of capacity c
// returns an empty window.
func (b *Block[T]) Range(i, j int) []T {
	if i < 0 || i > j || j > len(b.slots) {
		panic(fmt.Sprintf("rawmem: slot range [%d:%d] is out of range [0:%d]", i, j, len(b.slots)))
	}
	return b.slots[i:j]
}

// Wipe resets the slots in [i:j] to the zero value of the element type.
// This is the only write the block itself performs on slot contents; it
// runs no element teardown hooks.
func (b *Block[T]) Wipe(i, j int) {
	clear(b.Range(i, j))
}

// Swap exchanges storage ownership with the other block in constant time.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Take moves the storage out of the block, leaving it empty.
func (b *Block[T]) Take() Block[T] {
	var out Block[T]
	out.Swap(b)
	return out
}

// Release drops the storage without touching slot contents. Live values,
// if any, are the owner's problem; they must be torn down first.
func (b *Block[T]) Release() {
	b.slots = nil
}
