// Copyright (c) 2025 Visvasity LLC

package rawmem

import "reflect"

// SizeFor returns the in-memory byte size of the element type.
func SizeFor[T any]() int {
	return int(reflect.TypeFor[T]().Size())
}

// AlignFor returns the alignment of the element type.
func AlignFor[T any]() int {
	return reflect.TypeFor[T]().Align()
}
