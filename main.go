// Copyright (c) 2025 Visvasity LLC

// Command seqgen generates byte-slice backed sequence containers for fixed
// size element struct types.
//
// For example, given this snippet,
//
//   package samples
//
//   type SampleID uint32
//
//   type Point struct {
//   	X, Y int32
//   }
//
//   type Sample struct {
//   	ID     SampleID
//   	Weight float64
//   	Loc    Point
//   	Tags   [4]uint16
//   }
//
// running this command
//
//   seqgen -inpkg ./samples -outdir ./seqs Sample
//
// will create file sample.seqgen.go in ./seqs directory, containing a Sample
// view type over raw bytes with the following interface:
//
//   type Sample []byte
//   type SampleWriter struct { Sample }
//
//   func (v Sample) Writer() SampleWriter
//   func (v SampleWriter) Reader() Sample
//
//   func (v Sample) ID() SampleID
//   func (v Sample) Weight() float64
//   func (v Sample) Loc() Point
//   func (v Sample) Tags() [4]uint16
//
//   func (v SampleWriter) SetID(SampleID)
//   func (v SampleWriter) SetWeight(float64)
//   func (v SampleWriter) SetTags([4]uint16)
//
//   func (v Sample) CopyTo(x *samples.Sample)
//   func (v SampleWriter) CopyFrom(x *samples.Sample)
//
// and a SampleSeq sequence container holding a dynamic number of Sample
// items inside a single raw byte block:
//
//   type SampleSeq []byte
//   type SampleSeqWriter struct { SampleSeq }
//
//   func NewSampleSeq(block []byte) SampleSeq
//   func OpenSampleSeq(block []byte) (SampleSeq, error)
//   func SampleSeqCapForNumBytes(nbytes int) int
//
//   func (v SampleSeq) Len() int
//   func (v SampleSeq) Cap() int
//   func (v SampleSeq) ItemAt(i int) Sample
//   func (v SampleSeq) FindItemFunc(cmp func(x Sample) int) (int, bool)
//   func (v SampleSeq) AllItems() iter.Seq2[int, Sample]
//
//   func (v SampleSeqWriter) AppendItem() SampleWriter
//   func (v SampleSeqWriter) InsertItemAt(i int) SampleWriter
//   func (v SampleSeqWriter) RemoveItemAt(i int)
//   func (v SampleSeqWriter) DeleteItems(i, j int)
//   func (v SampleSeqWriter) SwapItems(i, j int)
//   func (v SampleSeqWriter) SortItemsFunc(cmp func(a, b Sample) int)

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/visvasity/seqgen/internal"
	"golang.org/x/tools/go/packages"
)

var (
	inPkg  = flag.String("inpkg", ".", "package path/name for the element type definitions")
	outPkg = flag.String("outpkg", "", "package name for the generated files")
	outDir = flag.String("outdir", "", "output directory for the generated files")
)

// Sequence container header holds the length and capacity as int64 values
// before the item slots.
const seqHeaderSize = 16

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of seqgen:\n")
	fmt.Fprintf(os.Stderr, "\tseqgen -inpkg '...' -outpkg '...' -outdir '...' types... # Must be a single package\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("seqgen: ")

	flag.Usage = Usage
	flag.Parse()
	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *outDir == "" {
		log.Fatalf("output directory must be set with -outdir flag")
	}

	types := flag.Args()
	pkg, err := loadPackage(*inPkg)
	if err != nil {
		log.Fatal(err)
	}

	if len(*outPkg) == 0 {
		s := filepath.Base(*outDir)
		outPkg = &s
	}

	g, err := newGenerator(pkg, *outPkg)
	if err != nil {
		log.Fatal(err)
	}
	for _, t := range types {
		if err := g.generate(t); err != nil {
			log.Fatal(err)
		}
		// Generate the sequence container only for top-level element types.
		if err := g.generateSeqType(t); err != nil {
			log.Fatal(err)
		}
	}

	for _, typ := range g.GetTypes() {
		// Format the output.
		src := g.GetSource(typ)

		// Write to file.
		outputName := filepath.Join(*outDir, strings.ToLower(typ)+".seqgen.go")
		if err := os.WriteFile(outputName, src, 0644); err != nil {
			log.Fatalf("writing output: %s", err)
		}
	}

	// Create a common.seqgen.go file for common stuff if any.
	src := g.GetSource("")
	outputName := filepath.Join(*outDir, "common.seqgen.go")
	if err := os.WriteFile(outputName, src, 0644); err != nil {
		log.Fatalf("writing common.seqgen.go: %s", err)
	}
}

func loadPackage(pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, pkg)
	if err != nil {
		return nil, err
	}
	return pkgs[0], nil
}

type Generator struct {
	checker *internal.Checker

	pkg     *packages.Package
	pkgName string

	common bytes.Buffer

	bufferMap map[string]*bytes.Buffer

	// importsMap holds a mapping from a package path name to list of typename
	// keys in the bufferMap that needs to import the package name. For example,
	//
	//   importsMap["github.com/visvasity/seqgen/common"]["Point"] = ""
	//
	// entry indicates an import statement like,
	//
	//   import "github.com/visvasity/seqgen/common"
	//
	// in the generated file named "point.seqgen.go".
	importsMap map[string]map[string]string

	// aliasPkgMap holds typename to it's source package from where this type
	// should be imported as an alias. For example,
	//
	//   aliasPkgMap["SampleID"] == "input"
	//
	// indicates that we should have the following alias
	//
	//   type SampleID = input.SampleID
	//
	// in the "common.seqgen.go" generated file. We expect an entry in the
	// importsMap for the "input" package.
	aliasPkgMap map[string]string
}

func newGenerator(pkg *packages.Package, pkgName string) (*Generator, error) {
	g := &Generator{
		checker:     internal.NewChecker(types.SizesFor(runtime.Compiler, runtime.GOARCH)),
		pkg:         pkg,
		pkgName:     pkgName,
		aliasPkgMap: make(map[string]string),
		bufferMap:   make(map[string]*bytes.Buffer),
		importsMap:  make(map[string]map[string]string),
	}
	return g, nil
}

func (g *Generator) readerName(typeName string) string {
	return typeName
}

func (g *Generator) writerName(typeName string) string {
	return typeName + "Writer"
}

func (g *Generator) seqName(typeName string) string {
	return typeName + "Seq"
}

func (g *Generator) getBuffer(typeName string) *bytes.Buffer {
	if len(typeName) == 0 {
		return &g.common
	}
	if b, ok := g.bufferMap[typeName]; ok {
		return b
	}
	b := new(bytes.Buffer)
	g.bufferMap[typeName] = b
	return b
}

func (g *Generator) addImport(typeName string, importName, packagePath string) error {
	vmap, ok := g.importsMap[packagePath]
	if !ok {
		vmap = make(map[string]string)
		g.importsMap[packagePath] = vmap
	}

	x, ok := vmap[typeName]
	if !ok {
		vmap[typeName] = importName
		g.importsMap[packagePath] = vmap
		return nil
	}

	if x != importName {
		return fmt.Errorf("multiple different import names for package %q by type %q", packagePath, typeName)
	}
	return nil
}

func (g *Generator) addAlias(typeName, pkgName, pkgPath string) error {
	g.aliasPkgMap[typeName] = pkgName
	return g.addImport("", pkgName, pkgPath)
}

func (g *Generator) P(typeName string, v ...any) {
	buf := g.getBuffer(typeName)
	for _, x := range v {
		fmt.Fprint(buf, x)
	}
	fmt.Fprintln(buf)
}

func (g *Generator) GetTypes() []string {
	return slices.Collect(maps.Keys(g.bufferMap))
}

func (g *Generator) GetSource(typeName string) []byte {
	buf := g.getSourceWithImports(typeName)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		log.Printf("warning: internal error: invalid Go generated: %s", err)
		log.Printf("warning: compile the package to analyze the error")
		return buf.Bytes()
	}
	return src
}

var numberAccessorMap = map[string][2]string{
	"int8":  {"Int8At", "SetInt8At"},
	"int16": {"Int16At", "SetInt16At"},
	"int32": {"Int32At", "SetInt32At"},
	"int64": {"Int64At", "SetInt64At"},

	"uint8":  {"Uint8At", "SetUint8At"},
	"uint16": {"Uint16At", "SetUint16At"},
	"uint32": {"Uint32At", "SetUint32At"},
	"uint64": {"Uint64At", "SetUint64At"},

	"float32": {"Float32At", "SetFloat32At"},
	"float64": {"Float64At", "SetFloat64At"},
}

func (g *Generator) generate(typeName string) error {
	scope := g.pkg.Types.Scope()
	object := scope.Lookup(typeName)
	if object == nil {
		return fmt.Errorf("typename %q doesn't exist", typeName)
	}
	tn, ok := object.(*types.TypeName)
	if !ok {
		return fmt.Errorf("generator type %q is not a typename", typeName)
	}
	if err := g.checker.Check(tn); err != nil {
		return err
	}

	// Generate code for all checked struct types in dependency order, so
	// that member field types come out before the structs that embed them.
	for sdata := range g.checker.All() {
		if _, ok := g.bufferMap[sdata.StructName]; ok {
			continue
		}
		if err := g.generateStructViews(sdata); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateStructViews(sdata *internal.StructData) error {
	if err := g.generateReaderWriterTypes(sdata.StructName); err != nil {
		return err
	}
	if err := g.generateReaderWriterMethods(sdata.StructName); err != nil {
		return err
	}
	if err := g.generateZeroMethods(sdata); err != nil {
		return err
	}
	if err := g.generatePrintMethods(sdata); err != nil {
		return err
	}
	for i, fdata := range sdata.FieldList {
		switch fdata.Kind {
		case "struct":
			if err := g.generateStructMethods(sdata, i); err != nil {
				return err
			}
		case "array":
			if err := g.generateArrayMethods(sdata, i); err != nil {
				return err
			}
			if err := g.generateAssignArrayMethods(sdata, i); err != nil {
				return err
			}
		default: // "number"
			if len(fdata.TypeName) == 0 {
				if err := g.generateNumberMethods(sdata, i); err != nil {
					return err
				}
			} else {
				if err := g.generateNamedNumberMethods(sdata, i); err != nil {
					return err
				}
			}
		}
	}
	return g.generateValueCopyMethods(sdata)
}

func (g *Generator) getImports(typeName string) [][2]string {
	var imports [][2]string
	for pkgPath, vmap := range g.importsMap {
		imp, ok := vmap[typeName]
		if !ok {
			continue
		}
		imports = append(imports, [2]string{imp, pkgPath})
	}
	return imports
}

func (g *Generator) getSourceWithImports(typeName string) *bytes.Buffer {
	buf := new(bytes.Buffer)

	fmt.Fprintln(buf, "// Code generated by github.com/visvasity/seqgen. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package", g.pkgName)
	fmt.Fprintln(buf)

	imports := g.getImports(typeName)
	if len(imports) != 0 {
		fmt.Fprintln(buf, "import (")
		for _, imp := range imports {
			if len(imp[0]) == 0 {
				fmt.Fprintf(buf, "%q\n", imp[1])
			} else {
				fmt.Fprintf(buf, "%s %q\n", imp[0], imp[1])
			}
		}
		fmt.Fprintln(buf, ")")
	}
	fmt.Fprintln(buf)

	if len(typeName) == 0 {
		g.generateCommonTypeAliases()
	}

	io.Copy(buf, g.getBuffer(typeName))
	return buf
}

func (g *Generator) generateReaderWriterTypes(typeName string) error {
	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)

	if err := g.addImport(typeName, "", "github.com/visvasity/seqgen/common"); err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "// Reader type defines accessor methods for read-only access.")
	g.P(typeName, "type ", readerTypeName, " common.BlockBytes")
	g.P(typeName)
	g.P(typeName, "// Writer type extends the reader with mutable methods.")
	g.P(typeName, "type ", writerTypeName, " struct { ", readerTypeName, " }")
	g.P(typeName)

	return nil
}

func (g *Generator) generateReaderWriterMethods(typeName string) error {
	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)

	g.P(typeName)
	g.P(typeName, "// BlockBytes returns access to the underlying byte slice.")
	g.P(typeName, "func (v ", readerTypeName, ") BlockBytes() common.BlockBytes {")
	g.P(typeName, "  return common.BlockBytes(v)")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// Writer returns the ", typeName, " writer for read-write access to it's fields.")
	g.P(typeName, "func (v ", readerTypeName, ") Writer() ", writerTypeName, " {")
	g.P(typeName, "  return ", writerTypeName, "{v}")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// Reader returns the ", typeName, " reader with read-only access to it's fields.")
	g.P(typeName, "func (v ", writerTypeName, ") Reader() ", readerTypeName, " {")
	g.P(typeName, "  return v.", readerTypeName)
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateZeroMethods(sdata *internal.StructData) error {
	typeName := sdata.StructName
	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", readerTypeName, ") IsZero() bool {")
	g.P(typeName, "  return common.IsZero(v[:", sdata.Size, "])")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", writerTypeName, ") SetZero() {")
	g.P(typeName, "  common.SetZero(v.BlockBytes()[:", sdata.Size, "])")
	g.P(typeName, "}")
	g.P(typeName)
	return nil
}

func (g *Generator) generateNumberMethods(sdata *internal.StructData, findex int) error {
	typeName, fdata := sdata.StructName, sdata.FieldList[findex]
	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)

	fmethods := numberAccessorMap[fdata.NumberKind]

	g.P(typeName)
	g.P(typeName, "func (v ", readerTypeName, ") ", fdata.Name, "() ", fdata.NumberKind, " {")
	g.P(typeName, "  return v.BlockBytes().", fmethods[0], "(", fdata.Offset, ")")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", writerTypeName, ") Set", fdata.Name, "(x ", fdata.NumberKind, ") {")
	g.P(typeName, "  v.BlockBytes().", fmethods[1], "(", fdata.Offset, ", x)")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateNamedNumberMethods(sdata *internal.StructData, findex int) error {
	typeName, fdata := sdata.StructName, sdata.FieldList[findex]
	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)

	if err := g.addAlias(fdata.TypeName, fdata.TypePkgName, fdata.TypePkgPath); err != nil {
		return err
	}

	fmethods := numberAccessorMap[fdata.NumberKind]

	g.P(typeName)
	g.P(typeName, "func (v ", readerTypeName, ") ", fdata.Name, "() ", fdata.TypeName, " {")
	g.P(typeName, "  return ", fdata.TypeName, "(v.BlockBytes().", fmethods[0], "(", fdata.Offset, "))")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", writerTypeName, ") Set", fdata.Name, "(x ", fdata.TypeName, ") {")
	g.P(typeName, "  v.BlockBytes().", fmethods[1], "(", fdata.Offset, ", ", fdata.NumberKind, "(x))")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateStructMethods(sdata *internal.StructData, findex int) error {
	typeName, fdata := sdata.StructName, sdata.FieldList[findex]
	readerTypeName := g.readerName(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", readerTypeName, ") ", fdata.Name, "() ", fdata.TypeName, " {")
	g.P(typeName, "  return ", fdata.TypeName, "(v.BlockBytes()[", fdata.Offset, ":])")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateArrayMethods(sdata *internal.StructData, findex int) error {
	typeName, fdata := sdata.StructName, sdata.FieldList[findex]
	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)

	if err := g.addImport(typeName, "", "fmt"); err != nil {
		return err
	}

	fmethods := numberAccessorMap[fdata.ElementKind]

	g.P(typeName)
	g.P(typeName, "func (v ", readerTypeName, ") ", fdata.Name, "Len() int {")
	g.P(typeName, "  return int(", fdata.Length, ")")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", readerTypeName, ") ", fdata.Name, "ItemAt(i int) ", fdata.ElementKind, " {")
	g.P(typeName, "  if i < 0 || i >= v.", fdata.Name, "Len() {")
	g.P(typeName, `    panic(fmt.Sprintf("array index %d is out of range [0:%d]", i, v.`, fdata.Name, `Len()))`)
	g.P(typeName, "  }")
	g.P(typeName, "  return v.BlockBytes().", fmethods[0], "(", fdata.Offset, "+ i * ", fdata.ElementSize, ")")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", writerTypeName, ") Set", fdata.Name, "ItemAt(i int, x ", fdata.ElementKind, ") {")
	g.P(typeName, "  if i < 0 || i >= v.", fdata.Name, "Len() {")
	g.P(typeName, `    panic(fmt.Sprintf("array index %d is out of range [0:%d]", i, v.`, fdata.Name, `Len()))`)
	g.P(typeName, "  }")
	g.P(typeName, "  v.BlockBytes().", fmethods[1], "(", fdata.Offset, "+ i * ", fdata.ElementSize, ", x)")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateAssignArrayMethods(sdata *internal.StructData, findex int) error {
	typeName, fdata := sdata.StructName, sdata.FieldList[findex]
	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", readerTypeName, ") ", fdata.Name, "() (xs [", fdata.Length, "]", fdata.ElementKind, ") {")
	g.P(typeName, "  for i := range xs {")
	g.P(typeName, "    xs[i] = v.", fdata.Name, "ItemAt(i)")
	g.P(typeName, "  }")
	g.P(typeName, "  return")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", writerTypeName, ") Set", fdata.Name, "(xs [", fdata.Length, "]", fdata.ElementKind, ") {")
	g.P(typeName, "  for i := range xs {")
	g.P(typeName, "    v.Set", fdata.Name, "ItemAt(i, xs[i])")
	g.P(typeName, "  }")
	g.P(typeName, "  return")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateValueCopyMethods(sdata *internal.StructData) error {
	typeName := sdata.StructName
	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)

	if err := g.addImport(typeName, sdata.InputPkgName, sdata.InputPkgPath); err != nil {
		return err
	}

	valueTypeName := sdata.InputPkgName + "." + typeName

	g.P(typeName)
	g.P(typeName, "// CopyTo copies field values out into the source struct type.")
	g.P(typeName, "func (v ", readerTypeName, ") CopyTo(x *", valueTypeName, ") {")
	for _, fdata := range sdata.FieldList {
		switch fdata.Kind {
		case "struct":
			g.P(typeName, "  v.", fdata.Name, "().CopyTo(&x.", fdata.Name, ")")
		default:
			g.P(typeName, "  x.", fdata.Name, " = v.", fdata.Name, "()")
		}
	}
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// CopyFrom copies field values in from the source struct type.")
	g.P(typeName, "func (v ", writerTypeName, ") CopyFrom(x *", valueTypeName, ") {")
	for _, fdata := range sdata.FieldList {
		switch fdata.Kind {
		case "struct":
			g.P(typeName, "  v.", fdata.Name, "().Writer().CopyFrom(&x.", fdata.Name, ")")
		default:
			g.P(typeName, "  v.Set", fdata.Name, "(x.", fdata.Name, ")")
		}
	}
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateCommonTypeAliases() {
	keys := slices.Collect(maps.Keys(g.aliasPkgMap))
	slices.Sort(keys)

	g.P("")
	g.P("", "type (")
	for _, k := range keys {
		v := g.aliasPkgMap[k]
		g.P("", "  ", k, " = ", v, ".", k)
	}
	g.P("", ")")
	g.P("")
}

func (g *Generator) generatePrintMethods(sdata *internal.StructData) error {
	typeName := sdata.StructName
	readerTypeName := g.readerName(typeName)

	if err := g.addImport(typeName, "", "strings"); err != nil {
		return err
	}
	if err := g.addImport(typeName, "", "fmt"); err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "func (v ", readerTypeName, ") String() string {")
	g.P(typeName, "  var sb strings.Builder")
	for i, fdata := range sdata.FieldList {
		if i != 0 {
			g.P(typeName, `  fmt.Fprintf(&sb, " ")`)
		}

		switch fdata.Kind {
		case "array":
			if fdata.ElementKind == "uint8" {
				g.P(typeName, `  fmt.Fprintf(&sb, "`, fdata.Name, `=[%d]{%x}", v.`, fdata.Name, `Len(), v.`, fdata.Name, `())`)
				continue
			}
			g.P(typeName, `  fmt.Fprintf(&sb, "`, fdata.Name, `=[%d]{", v.`, fdata.Name, `Len())`)
			g.P(typeName, `  for i := 0; i < v.`, fdata.Name, `Len(); i++ {`)
			g.P(typeName, `    if i == 0 {`)
			g.P(typeName, `      fmt.Fprintf(&sb, "%v", v.`, fdata.Name, `ItemAt(i))`)
			g.P(typeName, `    } else {`)
			g.P(typeName, `      fmt.Fprintf(&sb, " %v", v.`, fdata.Name, `ItemAt(i))`)
			g.P(typeName, `    }`)
			g.P(typeName, `  }`)
			g.P(typeName, `  fmt.Fprintf(&sb, "}")`)
		case "struct":
			g.P(typeName, `  fmt.Fprintf(&sb, "`, fdata.Name, `={%v}", v.`, fdata.Name, `())`)
		default:
			g.P(typeName, `  fmt.Fprintf(&sb, "`, fdata.Name, `=%v", v.`, fdata.Name, `())`)
		}
	}
	g.P(typeName, "  return sb.String()")
	g.P(typeName, "}")
	g.P(typeName)
	return nil
}

func (g *Generator) generateSeqType(typeName string) error {
	sdata, err := g.checker.Struct(typeName)
	if err != nil {
		return err
	}

	readerTypeName := g.readerName(typeName)
	writerTypeName := g.writerName(typeName)
	seqTypeName := g.seqName(typeName)
	seqWriterTypeName := g.writerName(seqTypeName)

	if err := g.addImport(typeName, "", "fmt"); err != nil {
		return err
	}
	if err := g.addImport(typeName, "", "iter"); err != nil {
		return err
	}
	if err := g.addImport(typeName, "", "sort"); err != nil {
		return err
	}

	itemSize := sdata.Size

	g.P(typeName)
	g.P(typeName, "// ", seqTypeName, " holds a dynamic number of ", typeName, " items inside a raw byte")
	g.P(typeName, "// block, after a fixed size header with the length and the capacity.")
	g.P(typeName, "type ", seqTypeName, " common.BlockBytes")
	g.P(typeName)
	g.P(typeName, "// Writer type extends the sequence reader with mutable methods.")
	g.P(typeName, "type ", seqWriterTypeName, " struct { ", seqTypeName, " }")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// BlockBytes returns access to the underlying byte slice.")
	g.P(typeName, "func (v ", seqTypeName, ") BlockBytes() common.BlockBytes {")
	g.P(typeName, "  return common.BlockBytes(v)")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// Writer returns the ", seqTypeName, " writer for read-write access to the items.")
	g.P(typeName, "func (v ", seqTypeName, ") Writer() ", seqWriterTypeName, " {")
	g.P(typeName, "  return ", seqWriterTypeName, "{v}")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// Reader returns the ", seqTypeName, " reader with read-only access to the items.")
	g.P(typeName, "func (v ", seqWriterTypeName, ") Reader() ", seqTypeName, " {")
	g.P(typeName, "  return v.", seqTypeName)
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func ", seqTypeName, "CapForNumBytes(nbytes int) int {")
	g.P(typeName, "  return (nbytes - ", seqHeaderSize, ") / ", itemSize)
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// New", seqTypeName, " creates an empty ", seqTypeName, " over the input block with the")
	g.P(typeName, "// largest capacity the block size allows. Returns nil if input block size is")
	g.P(typeName, "// too small.")
	g.P(typeName, "func New", seqTypeName, "(block []byte) ", seqTypeName, " {")
	g.P(typeName, "  size := len(block)")
	g.P(typeName, "  if size < ", seqHeaderSize, " {")
	g.P(typeName, "    return nil")
	g.P(typeName, "  }")
	g.P(typeName, "  common.SetZero(block)")
	g.P(typeName, "  v := ", seqTypeName, "(block)")
	g.P(typeName, "  n := (size - ", seqHeaderSize, ") / ", itemSize)
	g.P(typeName, "  v.Writer().internalSetCap(n)")
	g.P(typeName, "  return v")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func Open", seqTypeName, "(block []byte) (", seqTypeName, ", error) {")
	g.P(typeName, "  size := len(block)")
	g.P(typeName, "  if size < ", seqHeaderSize, " {")
	g.P(typeName, `    return nil, fmt.Errorf("input size is too small")`)
	g.P(typeName, "  }")
	g.P(typeName, "  v := ", seqTypeName, "(block)")
	g.P(typeName, "  n := (size - ", seqHeaderSize, ") / ", itemSize)
	g.P(typeName, "  if x := v.Cap(); x != n {")
	g.P(typeName, `    return nil, fmt.Errorf("sequence cap must be %d, found %d", n, x)`)
	g.P(typeName, "  }")
	g.P(typeName, "  if x := v.Len(); x < 0 || x > n {")
	g.P(typeName, `    return nil, fmt.Errorf("sequence len is %d, must be between [%d-%d]", x, 0, n)`)
	g.P(typeName, "  }")
	g.P(typeName, "  return v, nil")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqTypeName, ") Len() int {")
	g.P(typeName, "  return int(v.BlockBytes().Int64At(0))")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqTypeName, ") Cap() int {")
	g.P(typeName, "  return int(v.BlockBytes().Int64At(8))")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqWriterTypeName, ") internalSetLen(x int) {")
	g.P(typeName, "  v.BlockBytes().SetInt64At(0, int64(x))")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqWriterTypeName, ") internalSetCap(x int) {")
	g.P(typeName, "  v.BlockBytes().SetInt64At(8, int64(x))")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqTypeName, ") ItemAt(i int) ", readerTypeName, " {")
	g.P(typeName, "  if i < 0 || i >= v.Len() {")
	g.P(typeName, `    panic(fmt.Sprintf("sequence index %d is out of range [0:%d:%d]", i, v.Len(), v.Cap()))`)
	g.P(typeName, "  }")
	g.P(typeName, "  return ", readerTypeName, "(v[", seqHeaderSize, " + i * ", itemSize, ":])")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// AppendItem extends the sequence with a zero-initialized item and returns")
	g.P(typeName, "// the writer for the new item.")
	g.P(typeName, "func (v ", seqWriterTypeName, ") AppendItem() ", writerTypeName, " {")
	g.P(typeName, "  n := v.Len()")
	g.P(typeName, "  if n == v.Cap() {")
	g.P(typeName, `    panic(fmt.Sprintf("sequence is already full with %d items", n))`)
	g.P(typeName, "  }")
	g.P(typeName, "  v.internalSetLen(n+1)")
	g.P(typeName, "  w := v.ItemAt(n).Writer()")
	g.P(typeName, "  w.SetZero()")
	g.P(typeName, "  return w")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// InsertItemAt shifts items at and after position i upward, places a")
	g.P(typeName, "// zero-initialized item at position i and returns the writer for it.")
	g.P(typeName, "func (v ", seqWriterTypeName, ") InsertItemAt(i int) ", writerTypeName, " {")
	g.P(typeName, "  n := v.Len()")
	g.P(typeName, "  if i < 0 || i > n {")
	g.P(typeName, `    panic(fmt.Sprintf("sequence index %d is out of range [0:%d:%d]", i, v.Len(), v.Cap()))`)
	g.P(typeName, "  }")
	g.P(typeName, "  if n == v.Cap() {")
	g.P(typeName, `    panic(fmt.Sprintf("sequence is already full with %d items", n))`)
	g.P(typeName, "  }")
	g.P(typeName, "  beg := ", seqHeaderSize, "+i*", itemSize)
	g.P(typeName, "  end := ", seqHeaderSize, "+n*", itemSize)
	g.P(typeName, "  copy(v.BlockBytes()[beg+", itemSize, ":end+", itemSize, "], v.BlockBytes()[beg:end])")
	g.P(typeName, "  common.SetZero(v.BlockBytes()[beg:beg+", itemSize, "])")
	g.P(typeName, "  v.internalSetLen(n+1)")
	g.P(typeName, "  return v.ItemAt(i).Writer()")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqWriterTypeName, ") RemoveItemAt(i int) {")
	g.P(typeName, "  n := v.Len()")
	g.P(typeName, "  if i < 0 || i >= n {")
	g.P(typeName, `    panic(fmt.Sprintf("sequence index %d is out of range [0:%d:%d]", i, v.Len(), v.Cap()))`)
	g.P(typeName, "  }")
	g.P(typeName, "  beg := ", seqHeaderSize, "+i*", itemSize)
	g.P(typeName, "  end := ", seqHeaderSize, "+n*", itemSize)
	g.P(typeName, "  copy(v.BlockBytes()[beg:], v.BlockBytes()[beg+", itemSize, ":end])")
	g.P(typeName, "  common.SetZero(v.BlockBytes()[end-", itemSize, ":end])")
	g.P(typeName, "  v.internalSetLen(n-1)")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqWriterTypeName, ") DeleteItems(i, j int) {")
	g.P(typeName, "  n := v.Len()")
	g.P(typeName, "  if i < 0 || i >= n {")
	g.P(typeName, `    panic(fmt.Sprintf("first sequence index %d is out of range [0:%d:%d]", i, v.Len(), v.Cap()))`)
	g.P(typeName, "  }")
	g.P(typeName, "  if j < 0 || j > n {")
	g.P(typeName, `    panic(fmt.Sprintf("second sequence index %d is out of range [0:%d:%d]", j, v.Len(), v.Cap()))`)
	g.P(typeName, "  }")
	g.P(typeName, "  if j < i {")
	g.P(typeName, `    panic(fmt.Sprintf("invalid sequence indices %d < %d", j, i))`)
	g.P(typeName, "  }")
	g.P(typeName, "  if i == j {")
	g.P(typeName, "    return")
	g.P(typeName, "  }")
	g.P(typeName, "  ioff := ", seqHeaderSize, "+i*", itemSize)
	g.P(typeName, "  joff := ", seqHeaderSize, "+j*", itemSize)
	g.P(typeName, "  end := ", seqHeaderSize, "+n*", itemSize)
	g.P(typeName, "  copy(v.BlockBytes()[ioff:end], v.BlockBytes()[joff:end])")
	g.P(typeName, "  common.SetZero(v.BlockBytes()[end-(joff-ioff):end])")
	g.P(typeName, "  v.internalSetLen(n-(j-i))")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqWriterTypeName, ") SwapItems(i, j int) {")
	g.P(typeName, "  tmp := make([]byte, ", itemSize, ")")
	g.P(typeName, "  ioff := ", seqHeaderSize, "+ i * ", itemSize)
	g.P(typeName, "  joff := ", seqHeaderSize, "+ j * ", itemSize)
	g.P(typeName, "  copy(tmp, v.BlockBytes()[ioff:ioff+", itemSize, "])")
	g.P(typeName, "  copy(v.BlockBytes()[ioff:ioff+", itemSize, "], v.BlockBytes()[joff:joff+", itemSize, "])")
	g.P(typeName, "  copy(v.BlockBytes()[joff:joff+", itemSize, "], tmp)")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqWriterTypeName, ") SortItemsFunc(cmp func(a, b ", readerTypeName, ") int) {")
	g.P(typeName, "  helper := common.SortHelper{")
	g.P(typeName, "    LenFunc: v.Len,")
	g.P(typeName, "    SwapFunc: v.SwapItems,")
	g.P(typeName, "    CompareFunc: func(i,j int)int{return cmp(v.ItemAt(i), v.ItemAt(j))},")
	g.P(typeName, "  }")
	g.P(typeName, "  sort.Sort(&helper)")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqTypeName, ") FindItemFunc(cmp func(x ", readerTypeName, ") int) (int, bool) {")
	g.P(typeName, "  return sort.Find(v.Len(), func(i int) int { return cmp(v.ItemAt(i)) })")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "func (v ", seqTypeName, ") AllItems() iter.Seq2[int,", readerTypeName, "] {")
	g.P(typeName, "  return func(yield func(int, ", readerTypeName, ") bool) {")
	g.P(typeName, "    for i := 0; i < v.Len(); i++ {")
	g.P(typeName, "      if !yield(i, v.ItemAt(i)) {")
	g.P(typeName, "        return")
	g.P(typeName, "      }")
	g.P(typeName, "    }")
	g.P(typeName, "  }")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}
