// Copyright (c) 2025 Visvasity LLC

package seq

import (
	"reflect"
	"sync"
)

// Element types may opt into lifetime hooks by implementing any of the
// interfaces below with a pointer receiver. Plain types need none of
// them: their values are constructed as the zero value, copied by
// assignment and discarded by zeroing the slot.

// Initializer is the fallible value-construction hook. A failed Init
// must leave the value with nothing to tear down; only the elements
// constructed before it are destroyed on the failure path.
type Initializer interface {
	Init() error
}

// Cloner is implemented by element types whose values own state that
// plain assignment must not duplicate. Copying operations and, unless
// the type is also Relocatable, block-to-block transfers go through
// Clone.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is the teardown hook, run before a live slot is discarded.
// Destroy must not fail.
type Destroyer interface {
	Destroy()
}

// Relocatable marks a Cloner type whose values may still be moved to a
// new slot by plain assignment, with ownership following the bits.
type Relocatable interface {
	SafeToRelocate()
}

type caps struct {
	init     bool
	clone    bool
	destroy  bool
	relocate bool
}

var capsMap sync.Map // reflect.Type -> caps

func capsFor[T any]() caps {
	t := reflect.TypeFor[T]()
	if v, ok := capsMap.Load(t); ok {
		return v.(caps)
	}
	p := any(new(T))
	var c caps
	_, c.init = p.(Initializer)
	_, c.clone = p.(Cloner[T])
	_, c.destroy = p.(Destroyer)
	_, c.relocate = p.(Relocatable)
	capsMap.Store(t, c)
	return c
}
