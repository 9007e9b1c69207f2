// Copyright (c) 2025 Visvasity LLC

package rawmem

import (
	"errors"
	"math"
	"testing"
)

func TestNewBlock(t *testing.T) {
	b, err := New[int64](10)
	if err != nil {
		t.Fatal(err)
	}
	if n := b.Capacity(); n != 10 {
		t.Fatalf("wanted capacity 10, got %d", n)
	}

	zb, err := New[int64](0)
	if err != nil {
		t.Fatal(err)
	}
	if n := zb.Capacity(); n != 0 {
		t.Fatalf("wanted capacity 0, got %d", n)
	}
}

func TestNewBlockErrors(t *testing.T) {
	if _, err := New[int64](-1); !errors.Is(err, ErrNoMemory) {
		t.Fatalf("wanted ErrNoMemory, got %v", err)
	}
	if _, err := New[int64](math.MaxInt); !errors.Is(err, ErrNoMemory) {
		t.Fatalf("wanted ErrNoMemory, got %v", err)
	}
}

func TestSlotAccess(t *testing.T) {
	b, err := New[int32](4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		*b.Slot(i) = int32(i + 1)
	}
	for i := 0; i < 4; i++ {
		if x := *b.Slot(i); x != int32(i+1) {
			t.Fatalf("wanted %d, got %d", i+1, x)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("wanted panic on out-of-range slot index")
		}
	}()
	b.Slot(4)
}

func TestRange(t *testing.T) {
	b, err := New[int64](8)
	if err != nil {
		t.Fatal(err)
	}
	if vs := b.Range(8, 8); len(vs) != 0 {
		t.Fatalf("wanted empty one-past-the-end window, got len %d", len(vs))
	}
	if vs := b.Range(2, 6); len(vs) != 4 {
		t.Fatalf("wanted window of 4 slots, got %d", len(vs))
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("wanted panic on out-of-range window")
		}
	}()
	b.Range(4, 9)
}

func TestWipe(t *testing.T) {
	b, err := New[int64](4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		*b.Slot(i) = 100
	}
	b.Wipe(1, 3)
	want := []int64{100, 0, 0, 100}
	for i, w := range want {
		if x := *b.Slot(i); x != w {
			t.Fatalf("slot %d: wanted %d, got %d", i, w, x)
		}
	}
}

func TestSwapAndTake(t *testing.T) {
	a, err := New[int64](2)
	if err != nil {
		t.Fatal(err)
	}
	var b Block[int64]
	*a.Slot(0) = 7

	a.Swap(&b)
	if n := a.Capacity(); n != 0 {
		t.Fatalf("wanted empty block after swap, got capacity %d", n)
	}
	if x := *b.Slot(0); x != 7 {
		t.Fatalf("wanted 7, got %d", x)
	}

	c := b.Take()
	if n := b.Capacity(); n != 0 {
		t.Fatalf("wanted empty source after move, got capacity %d", n)
	}
	if x := *c.Slot(0); x != 7 {
		t.Fatalf("wanted 7, got %d", x)
	}

	c.Release()
	if n := c.Capacity(); n != 0 {
		t.Fatalf("wanted zero capacity after release, got %d", n)
	}
}
