// Copyright (c) 2025 Visvasity LLC

package internal

import (
	"go/token"
	"go/types"
	"runtime"
	"testing"

	"golang.org/x/tools/go/packages"
)

func loadInputPackage(t *testing.T) *packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, "github.com/visvasity/seqgen/input")
	if err != nil {
		t.Fatal(err)
	}
	return pkgs[0]
}

func TestChecker(t *testing.T) {
	pkg := loadInputPackage(t)
	scope := pkg.Types.Scope()
	object := scope.Lookup("Sample")
	if object == nil {
		t.Fatalf("Sample not found")
	}

	checker := NewChecker(types.SizesFor(runtime.Compiler, runtime.GOARCH))
	if err := checker.Check(object.(*types.TypeName)); err != nil {
		t.Fatal(err)
	}

	sdata, err := checker.Struct("Sample")
	if err != nil {
		t.Fatal(err)
	}
	if sdata.Size != 32 {
		t.Fatalf("wanted size 32, got %d", sdata.Size)
	}
	if n := len(sdata.FieldList); n != 4 {
		t.Fatalf("wanted 4 fields, got %d", n)
	}

	wantOffsets := []int64{0, 8, 16, 24}
	for i, fdata := range sdata.FieldList {
		if fdata.Offset != wantOffsets[i] {
			t.Fatalf("field %s: wanted offset %d, got %d", fdata.Name, wantOffsets[i], fdata.Offset)
		}
	}

	if fdata := sdata.FieldList[0]; fdata.Kind != "number" || fdata.TypeName != "SampleID" {
		t.Fatalf("wanted named number field, got kind %q typename %q", fdata.Kind, fdata.TypeName)
	}
	if fdata := sdata.FieldList[1]; fdata.Kind != "number" || fdata.NumberKind != "float64" {
		t.Fatalf("wanted float64 number field, got kind %q number kind %q", fdata.Kind, fdata.NumberKind)
	}
	if fdata := sdata.FieldList[2]; fdata.Kind != "struct" || fdata.TypeName != "Point" {
		t.Fatalf("wanted struct field, got kind %q typename %q", fdata.Kind, fdata.TypeName)
	}
	if fdata := sdata.FieldList[3]; fdata.Kind != "array" || fdata.Length != 4 || fdata.ElementKind != "uint16" {
		t.Fatalf("wanted [4]uint16 array field, got kind %q length %d element kind %q", fdata.Kind, fdata.Length, fdata.ElementKind)
	}

	// Nested struct types come out before their containers.
	var names []string
	for sd := range checker.All() {
		names = append(names, sd.StructName)
	}
	if len(names) != 2 || names[0] != "Point" || names[1] != "Sample" {
		t.Fatalf("wanted [Point Sample], got %v", names)
	}
}

func TestCheckerRejectsVariableSizeFields(t *testing.T) {
	checker := NewChecker(types.SizesFor(runtime.Compiler, runtime.GOARCH))
	pkg := types.NewPackage("example.com/badinput", "badinput")

	newNamedStruct := func(name string, fields ...*types.Var) *types.TypeName {
		st := types.NewStruct(fields, nil)
		tn := types.NewTypeName(token.NoPos, pkg, name, nil)
		types.NewNamed(tn, st, nil)
		return tn
	}

	sliceType := newNamedStruct("WithSlice",
		types.NewField(token.NoPos, pkg, "Xs", types.NewSlice(types.Typ[types.Int64]), false))
	if err := checker.Check(sliceType); err == nil {
		t.Fatalf("slice fields must be rejected")
	}

	boolType := newNamedStruct("WithBool",
		types.NewField(token.NoPos, pkg, "Flag", types.Typ[types.Bool], false))
	if err := checker.Check(boolType); err == nil {
		t.Fatalf("bool fields must be rejected")
	}

	stringType := newNamedStruct("WithString",
		types.NewField(token.NoPos, pkg, "Name", types.Typ[types.String], false))
	if err := checker.Check(stringType); err == nil {
		t.Fatalf("string fields must be rejected")
	}

	anonType := newNamedStruct("WithAnonymous",
		types.NewField(token.NoPos, pkg, "Point", types.Typ[types.Int64], true))
	if err := checker.Check(anonType); err == nil {
		t.Fatalf("anonymous fields must be rejected")
	}
}
