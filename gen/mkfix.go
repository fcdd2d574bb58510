//go:build ignore

// mkfix generates frac.go, alias.go and shim.go: the fractional-bit
// marker types, the layout aliases and their per-alias constructors.
//
// Run it from the repository root:
//
//	go run gen/mkfix.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

type layout struct {
	Name    string // I16F16, U4F4, ...
	Storage string // int16, uint8, ... empty for 128-bit layouts
	Frac    int
	Signed  bool
	Wide    bool // stored as a hi/lo word pair
}

var fracBits = []int{0, 4, 8, 12, 16, 24, 32, 48, 64, 96, 128}
var negFracBits = []int{4, 8, 32}

var splits = map[int][]int{
	8:   {0, 4, 8},
	16:  {0, 4, 8, 12, 16},
	32:  {0, 8, 16, 24, 32},
	64:  {0, 16, 32, 48, 64},
	128: {0, 32, 64, 96, 128},
}

// layouts returns one slice per bit width, signed layouts first.
func layouts() [][]layout {
	var out [][]layout
	for _, bits := range []int{8, 16, 32, 64, 128} {
		var group []layout
		for _, signed := range []bool{true, false} {
			for _, frac := range splits[bits] {
				l := layout{Frac: frac, Signed: signed, Wide: bits == 128}
				prefix := "U"
				if signed {
					prefix = "I"
				}
				l.Name = fmt.Sprintf("%s%dF%d", prefix, bits-frac, frac)
				if !l.Wide {
					l.Storage = fmt.Sprintf("int%d", bits)
					if !signed {
						l.Storage = "u" + l.Storage
					}
				}
				group = append(group, l)
			}
		}
		out = append(out, group)
	}
	return out
}

var fracTmpl = template.Must(template.New("frac").Parse(`// Code generated by gen/mkfix.go; DO NOT EDIT.

package fixed

{{range .Pos}}// F{{.}} selects {{.}} fractional bits.
type F{{.}} struct{}

func (F{{.}}) FracBits() int32 { return {{.}} }

{{end}}{{range .Neg}}// FM{{.}} selects -{{.}} fractional bits, scaling raw values by 2^{{.}}.
type FM{{.}} struct{}

func (FM{{.}}) FracBits() int32 { return -{{.}} }

{{end}}`))

var aliasTmpl = template.Must(template.New("alias").Parse(`// Code generated by gen/mkfix.go; DO NOT EDIT.

package fixed

//go:generate go run gen/mkfix.go

// Aliases for the common layouts. The name records the split: I16F16
// is signed with 16 integer and 16 fractional bits, U4F4 is unsigned
// with 4 of each.
type (
{{range .}}{{range .}}{{if .Wide}}	{{.Name}} = Fix128[F{{.Frac}}, {{if .Signed}}Signed{{else}}Unsigned{{end}}]
{{else}}	{{.Name}} = Fix[{{.Storage}}, F{{.Frac}}]
{{end}}{{end}}
{{end}})
`))

var shimTmpl = template.Must(template.New("shim").Parse(`// Code generated by gen/mkfix.go; DO NOT EDIT.

package fixed

{{range .}}{{range .}}// {{.Name}}FromBits returns the value with the given raw storage pattern.
{{if .Wide}}func {{.Name}}FromBits(hi, lo uint64) {{.Name}} { return {{.Name}}{hi: hi, lo: lo} }
{{else}}func {{.Name}}FromBits(b {{.Storage}}) {{.Name}} { return {{.Name}}{bits: b} }
{{end}}
// Parse{{.Name}} parses s as described by Parse.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	var x {{.Name}}
	err := Parse(&x, s)
	return x, err
}

{{end}}{{end}}`))

func write(name string, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	if err := os.WriteFile(name, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func main() {
	ls := layouts()
	write("frac.go", fracTmpl, struct{ Pos, Neg []int }{fracBits, negFracBits})
	write("alias.go", aliasTmpl, ls)
	write("shim.go", shimTmpl, ls)
}
