// Copyright (c) 2025 Visvasity LLC

package input

// SampleID identifies a sample record.
type SampleID uint32

// Point is a 2D coordinate.
type Point struct {
	X, Y int32
}

// Span is a half-open [Begin, End) interval.
type Span struct {
	Begin, End uint64
}

// Sample is a weighted record with a location and fixed tag slots.
type Sample struct {
	ID     SampleID
	Weight float64
	Loc    Point
	Tags   [4]uint16
}
