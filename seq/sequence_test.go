// Copyright (c) 2025 Visvasity LLC

package seq

import (
	"errors"
	"slices"
	"testing"
)

// tracked owns imaginary external state: copies must go through Clone
// and discarded values through Destroy. Counters are package-level;
// tests are single-threaded.
type tracked struct {
	v        int
	failNext bool
}

var (
	nclones   int
	ndestroys int
)

func (t *tracked) Clone() (tracked, error) {
	if t.failNext {
		return tracked{}, errors.New("clone failed")
	}
	nclones++
	return tracked{v: t.v}, nil
}

func (t *tracked) Destroy() {
	ndestroys++
}

// movable is a tracked-like type that declares bitwise relocation safe.
type movable struct {
	v int
}

func (m *movable) Clone() (movable, error) {
	nclones++
	return movable{v: m.v}, nil
}

func (m *movable) Destroy() {
	ndestroys++
}

func (m *movable) SafeToRelocate() {}

// sentinel value-constructs to a non-zero state.
type sentinel struct {
	n int
}

var sentinelFailAt = -1

func (s *sentinel) Init() error {
	if s.n != 0 {
		return errors.New("slot not zero before construction")
	}
	if sentinelFailAt == 0 {
		return errors.New("construction failed")
	}
	if sentinelFailAt > 0 {
		sentinelFailAt--
	}
	s.n = 42
	return nil
}

func (s *sentinel) Destroy() {
	ndestroys++
}

func resetCounters() {
	nclones, ndestroys, sentinelFailAt = 0, 0, -1
}

func values[T any](s *Sequence[T]) []T {
	var vs []T
	for _, v := range s.All() {
		vs = append(vs, v)
	}
	return vs
}

func TestZeroValue(t *testing.T) {
	var s Sequence[int]
	if s.Len() != 0 || s.Cap() != 0 {
		t.Fatalf("wanted empty zero-value sequence, got len=%d cap=%d", s.Len(), s.Cap())
	}
	if _, err := s.Append(1); err != nil {
		t.Fatal(err)
	}
	if got := values(&s); !slices.Equal(got, []int{1}) {
		t.Fatalf("wanted [1], got %v", got)
	}
}

func TestNewSize(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		s, err := NewSize[int64](n)
		if err != nil {
			t.Fatal(err)
		}
		if s.Len() != n {
			t.Fatalf("wanted size %d, got %d", n, s.Len())
		}
		if s.Cap() < n {
			t.Fatalf("wanted capacity >= %d, got %d", n, s.Cap())
		}
		for i, v := range s.All() {
			if v != 0 {
				t.Fatalf("element %d: wanted default value 0, got %d", i, v)
			}
		}
	}
}

func TestNewSizeInit(t *testing.T) {
	resetCounters()
	s, err := NewSize[sentinel](3)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range s.All() {
		if v.n != 42 {
			t.Fatalf("element %d: wanted constructed value 42, got %d", i, v.n)
		}
	}
}

func TestNewSizeInitRollback(t *testing.T) {
	resetCounters()
	sentinelFailAt = 2
	if _, err := NewSize[sentinel](5); err == nil {
		t.Fatalf("wanted construction error")
	}
	if ndestroys != 2 {
		t.Fatalf("wanted 2 destroyed elements, got %d", ndestroys)
	}
}

func TestCloneDeepCopy(t *testing.T) {
	s := New[int]()
	for i := 1; i <= 5; i++ {
		if _, err := s.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	c, err := s.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(values(s), values(c)) {
		t.Fatalf("wanted equal contents, got %v and %v", values(s), values(c))
	}
	*c.At(0) = 999
	if _, err := c.Append(6); err != nil {
		t.Fatal(err)
	}
	if got := values(s); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("mutating the copy changed the original: %v", got)
	}
}

func TestCloneRollback(t *testing.T) {
	resetCounters()
	s := New[tracked]()
	for i := 0; i < 4; i++ {
		if _, err := s.Append(tracked{v: i}); err != nil {
			t.Fatal(err)
		}
	}
	s.At(2).failNext = true
	nclones, ndestroys = 0, 0
	if _, err := s.Clone(); err == nil {
		t.Fatalf("wanted clone error")
	}
	if nclones != 2 {
		t.Fatalf("wanted 2 clones before the failure, got %d", nclones)
	}
	if ndestroys != 2 {
		t.Fatalf("wanted partial copy destroyed, got %d destroys", ndestroys)
	}
	if s.Len() != 4 {
		t.Fatalf("wanted source untouched, got size %d", s.Len())
	}
}

func TestTake(t *testing.T) {
	s := New[int]()
	for i := 1; i <= 3; i++ {
		if _, err := s.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	m := s.Take()
	if s.Len() != 0 {
		t.Fatalf("wanted moved-from size 0, got %d", s.Len())
	}
	if got := values(m); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("wanted [1 2 3], got %v", got)
	}

	// The source must behave like a fresh sequence.
	if _, err := s.Append(9); err != nil {
		t.Fatal(err)
	}
	if got := values(s); !slices.Equal(got, []int{9}) {
		t.Fatalf("wanted [9], got %v", got)
	}
}

func TestMoveFrom(t *testing.T) {
	resetCounters()
	dst, err := NewSize[sentinel](3)
	if err != nil {
		t.Fatal(err)
	}
	src := New[sentinel]()
	if _, err := src.AppendFunc(func(p *sentinel) error { return p.Init() }); err != nil {
		t.Fatal(err)
	}
	dst.MoveFrom(src)
	if ndestroys != 3 {
		t.Fatalf("wanted previous contents destroyed, got %d destroys", ndestroys)
	}
	if src.Len() != 0 {
		t.Fatalf("wanted empty source, got size %d", src.Len())
	}
	if dst.Len() != 1 || dst.At(0).n != 42 {
		t.Fatalf("wanted moved contents, got size %d", dst.Len())
	}
}

func TestSwap(t *testing.T) {
	a := New[int]()
	b := New[int]()
	for i := 1; i <= 3; i++ {
		if _, err := a.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := b.Append(7); err != nil {
		t.Fatal(err)
	}
	a.Swap(b)
	if got := values(a); !slices.Equal(got, []int{7}) {
		t.Fatalf("wanted [7], got %v", got)
	}
	if got := values(b); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("wanted [1 2 3], got %v", got)
	}
}

func TestCopyFromInPlace(t *testing.T) {
	// Target capacity already covers the source: no new allocation.
	dst := New[int]()
	if err := dst.Reserve(8); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if _, err := dst.Append(-1); err != nil {
			t.Fatal(err)
		}
	}
	src := New[int]()
	for i := 1; i <= 5; i++ {
		if _, err := src.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	capBefore := dst.Cap()
	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	if dst.Cap() != capBefore {
		t.Fatalf("wanted capacity %d unchanged, got %d", capBefore, dst.Cap())
	}
	if !slices.Equal(values(dst), values(src)) {
		t.Fatalf("wanted %v, got %v", values(src), values(dst))
	}
}

func TestCopyFromShrinking(t *testing.T) {
	resetCounters()
	dst, err := NewSize[sentinel](5)
	if err != nil {
		t.Fatal(err)
	}
	src, err := NewSize[sentinel](2)
	if err != nil {
		t.Fatal(err)
	}
	capBefore := dst.Cap()
	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	if ndestroys != 3 {
		t.Fatalf("wanted surplus tail destroyed, got %d destroys", ndestroys)
	}
	if dst.Len() != 2 || dst.Cap() != capBefore {
		t.Fatalf("wanted size 2 at capacity %d, got size %d cap %d", capBefore, dst.Len(), dst.Cap())
	}
}

func TestCopyFromReallocating(t *testing.T) {
	// Source does not fit: a full copy is built and swapped in.
	dst := New[int]()
	if _, err := dst.Append(-1); err != nil {
		t.Fatal(err)
	}
	src := New[int]()
	for i := 1; i <= 5; i++ {
		if _, err := src.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	if dst.Cap() < 5 {
		t.Fatalf("wanted capacity >= 5, got %d", dst.Cap())
	}
	if !slices.Equal(values(dst), values(src)) {
		t.Fatalf("wanted %v, got %v", values(src), values(dst))
	}
}

func TestCopyFromStrongSafety(t *testing.T) {
	resetCounters()
	dst := New[tracked]()
	if _, err := dst.Append(tracked{v: 1}); err != nil {
		t.Fatal(err)
	}
	src := New[tracked]()
	for i := 0; i < 4; i++ {
		if _, err := src.Append(tracked{v: 10 + i}); err != nil {
			t.Fatal(err)
		}
	}
	src.At(1).failNext = true
	if err := dst.CopyFrom(src); err == nil {
		t.Fatalf("wanted copy error")
	}
	// Reallocating branch failed before the swap: dst untouched.
	if dst.Len() != 1 || dst.At(0).v != 1 {
		t.Fatalf("wanted destination untouched, got size %d", dst.Len())
	}
}

func TestAtPanics(t *testing.T) {
	s := New[int]()
	if _, err := s.Append(1); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("wanted panic on out-of-range index")
		}
	}()
	s.At(1)
}

func TestRefs(t *testing.T) {
	s := New[int]()
	for i := 1; i <= 4; i++ {
		if _, err := s.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range s.Refs() {
		*p *= 10
	}
	if got := values(s); !slices.Equal(got, []int{10, 20, 30, 40}) {
		t.Fatalf("wanted [10 20 30 40], got %v", got)
	}
}

func TestSortAndFind(t *testing.T) {
	s := New[int]()
	for _, v := range []int{5, 1, 4, 2, 3} {
		if _, err := s.Append(v); err != nil {
			t.Fatal(err)
		}
	}
	s.SortFunc(func(a, b int) int { return a - b })
	if got := values(s); !slices.IsSorted(got) {
		t.Fatalf("wanted sorted values, got %v", got)
	}
	i, ok := s.FindFunc(func(x int) int { return x - 4 })
	if !ok || i != 3 {
		t.Fatalf("wanted to find 4 at position 3, got %d %v", i, ok)
	}
	if _, ok := s.FindFunc(func(x int) int { return x - 9 }); ok {
		t.Fatalf("wanted lookup miss for 9")
	}
}

func TestClear(t *testing.T) {
	resetCounters()
	s, err := NewSize[sentinel](4)
	if err != nil {
		t.Fatal(err)
	}
	capBefore := s.Cap()
	s.Clear()
	if ndestroys != 4 {
		t.Fatalf("wanted 4 destroys, got %d", ndestroys)
	}
	if s.Len() != 0 || s.Cap() != capBefore {
		t.Fatalf("wanted empty sequence at capacity %d, got len=%d cap=%d", capBefore, s.Len(), s.Cap())
	}
}
