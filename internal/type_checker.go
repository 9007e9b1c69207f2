// Copyright (c) 2025 Visvasity LLC

package internal

import (
	"fmt"
	"go/types"
	"iter"

	"golang.org/x/tools/go/types/typeutil"
)

// Element types for generated sequences must have a fixed size with no
// indirection, so that items can live inside raw byte blocks and move
// between slots with a plain byte copy.

// FieldData describes one field of a checked element struct type.
type FieldData struct {
	Index int
	Name  string
	Kind  string // One of ["number", "struct", "array"]

	Offset    int64
	Size      int64
	Alignment int64

	// Kind == "number" or ElementKind for arrays.
	NumberKind string // One of ["int8","int16","int32","int64","uint8","uint16","uint32","uint64","float32","float64"]

	// Set for named field types that need an alias in the output.
	TypeName    string
	TypePkgPath string
	TypePkgName string

	// Kind == "array"
	Length      int64
	ElementKind string
	ElementSize int64
}

// StructData describes a checked element struct type.
type StructData struct {
	StructName string
	Size       int64

	InputPkgPath string
	InputPkgName string

	FieldList []*FieldData
}

var fixedBasicKindMap = map[types.BasicKind]string{
	types.Int8:    "int8",
	types.Int16:   "int16",
	types.Int32:   "int32",
	types.Int64:   "int64",
	types.Uint8:   "uint8",
	types.Uint16:  "uint16",
	types.Uint32:  "uint32",
	types.Uint64:  "uint64",
	types.Float32: "float32",
	types.Float64: "float64",
}

// Checker validates element struct types and collects the field layout
// data the generator emits from.
type Checker struct {
	sizer types.Sizes

	failedTypes   typeutil.Map // map[types.Type]error
	checkedTypes  typeutil.Map // map[types.Type]bool
	checkingTypes typeutil.Map // map[types.Type]bool

	structDataMap map[string]*StructData

	// order holds struct names in dependency order, nested field types
	// before the structs that embed them.
	order []string
}

func NewChecker(sizer types.Sizes) *Checker {
	return &Checker{
		sizer:         sizer,
		structDataMap: make(map[string]*StructData),
	}
}

// Struct returns the collected data for a previously checked type.
func (c *Checker) Struct(typeName string) (*StructData, error) {
	v, ok := c.structDataMap[typeName]
	if !ok {
		return nil, fmt.Errorf("typename %q was not checked", typeName)
	}
	return v, nil
}

// All yields checked struct data in dependency order.
func (c *Checker) All() iter.Seq[*StructData] {
	return func(yield func(*StructData) bool) {
		for _, name := range c.order {
			if !yield(c.structDataMap[name]) {
				return
			}
		}
	}
}

// Check validates the named struct type and every named struct it
// embeds, and prepares their layout data.
func (c *Checker) Check(tn *types.TypeName) (status error) {
	s, ok := tn.Type().Underlying().(*types.Struct)
	if !ok {
		return fmt.Errorf("input type (%v) is not a named struct type", tn)
	}

	if v := c.checkedTypes.At(s); v != nil {
		return nil
	}
	if v := c.failedTypes.At(s); v != nil {
		return fmt.Errorf("struct type is not supported: %w", v.(error))
	}
	if v := c.checkingTypes.At(s); v != nil {
		return fmt.Errorf("struct type (%v) with recursive references is not supported", s)
	}

	c.checkingTypes.Set(s, true)
	defer func() {
		if status == nil {
			c.checkedTypes.Set(s, true)
		} else {
			c.failedTypes.Set(s, status)
		}
		c.checkingTypes.Delete(s)
	}()

	for i := 0; i < s.NumFields(); i++ {
		v := s.Field(i)
		if v.Anonymous() {
			return fmt.Errorf("anonymous fields (%v) are not supported", v)
		}
		if err := c.checkField(v); err != nil {
			return err
		}
	}
	return c.prepareStructData(tn, s)
}

func (c *Checker) checkField(v *types.Var) error {
	vtype := v.Type()
	switch x := vtype.Underlying().(type) {
	default:
		return fmt.Errorf("field (%v) of type %T is not supported", v, vtype)
	case *types.Basic:
		if _, ok := fixedBasicKindMap[x.Kind()]; !ok {
			return fmt.Errorf("basic field (%v) of type %T is not supported", v, vtype)
		}
	case *types.Array:
		if x.Len() == 0 {
			return fmt.Errorf("zero sized arrays are not supported")
		}
		b, ok := x.Elem().Underlying().(*types.Basic)
		if !ok {
			return fmt.Errorf("array element type (%v) is not supported", x.Elem())
		}
		if _, ok := fixedBasicKindMap[b.Kind()]; !ok {
			return fmt.Errorf("array element type (%v) is not supported", x.Elem())
		}
	case *types.Struct:
		ntype, ok := vtype.(*types.Named)
		if !ok {
			return fmt.Errorf("anonymous/inline struct field types are not supported")
		}
		return c.Check(ntype.Obj())
	case *types.Slice:
		return fmt.Errorf("slice field (%v) is not supported: element types must be of fixed size", v)
	}
	return nil
}

func (c *Checker) prepareStructData(tn *types.TypeName, stype *types.Struct) error {
	sdata := &StructData{
		StructName:   tn.Name(),
		InputPkgPath: tn.Pkg().Path(),
		InputPkgName: tn.Pkg().Name(),
	}

	var fs []*types.Var
	for i := 0; i < stype.NumFields(); i++ {
		f := stype.Field(i)
		fdata := &FieldData{
			Index:     i,
			Name:      f.Name(),
			Alignment: c.sizer.Alignof(f.Type()),
			Size:      c.sizer.Sizeof(f.Type()),
		}

		switch x := f.Type().Underlying().(type) {
		case *types.Basic:
			fdata.Kind = "number"
			fdata.NumberKind = fixedBasicKindMap[x.Kind()]
		case *types.Struct:
			fdata.Kind = "struct"
		case *types.Array:
			fdata.Kind = "array"
			fdata.Length = x.Len()
			fdata.ElementKind = fixedBasicKindMap[x.Elem().Underlying().(*types.Basic).Kind()]
			fdata.ElementSize = c.sizer.Sizeof(x.Elem())
		}

		// Named field types are referenced through aliases in the
		// generated package.
		switch x := f.Type().(type) {
		case *types.Alias:
			fdata.TypeName = x.Obj().Name()
			fdata.TypePkgPath = x.Obj().Pkg().Path()
			fdata.TypePkgName = x.Obj().Pkg().Name()
		case *types.Named:
			fdata.TypeName = x.Obj().Name()
			fdata.TypePkgPath = x.Obj().Pkg().Path()
			fdata.TypePkgName = x.Obj().Pkg().Name()
		}

		fs = append(fs, f)
		sdata.FieldList = append(sdata.FieldList, fdata)
	}

	offsets := c.sizer.Offsetsof(fs)
	for i, offset := range offsets {
		sdata.FieldList[i].Offset = offset
	}
	sdata.Size = c.sizer.Sizeof(stype)

	if _, ok := c.structDataMap[sdata.StructName]; !ok {
		c.structDataMap[sdata.StructName] = sdata
		c.order = append(c.order, sdata.StructName)
	}
	return nil
}
