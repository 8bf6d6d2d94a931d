package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"
)

const generatedHeader = "// Code generated by lingen. DO NOT EDIT.\n"

const linearizeImport = "github.com/arthur-debert/linearmap/linearize"

// Emit renders a validated schema as formatted Go source. Each type
// gets a declaration plus a <Name>Codec constructor; enums also get
// their constant block, unions their variant structs.
func Emit(s *Schema) ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "\npackage %s\n\n", s.Package)
	fmt.Fprintf(&buf, "import %q\n", linearizeImport)

	for _, td := range s.Types {
		switch td.Kind {
		case KindEnum:
			emitEnum(&buf, td)
		case KindStruct:
			emitStruct(&buf, td)
		case KindUnion:
			emitUnion(&buf, td)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func emitEnum(buf *bytes.Buffer, td TypeDef) {
	fmt.Fprintf(buf, "\ntype %s uint8\n\n", td.Name)
	buf.WriteString("const (\n")
	for i, v := range td.Values {
		if i == 0 {
			fmt.Fprintf(buf, "\t%s%s %s = iota\n", td.Name, exportName(v), td.Name)
		} else {
			fmt.Fprintf(buf, "\t%s%s\n", td.Name, exportName(v))
		}
	}
	buf.WriteString(")\n\n")

	fmt.Fprintf(buf, "// %sCodec maps %s onto [0, %d).\n", td.Name, td.Name, len(td.Values))
	fmt.Fprintf(buf, "func %sCodec() linearize.Bijection[%s] {\n", td.Name, td.Name)
	fmt.Fprintf(buf, "\treturn linearize.Enum(\n")
	for _, v := range td.Values {
		fmt.Fprintf(buf, "\t\t%s%s,\n", td.Name, exportName(v))
	}
	buf.WriteString("\t)\n}\n")
}

func emitStruct(buf *bytes.Buffer, td TypeDef) {
	fmt.Fprintf(buf, "\ntype %s struct {\n", td.Name)
	for _, f := range td.Fields {
		fmt.Fprintf(buf, "\t%s %s\n", exportName(f.Name), f.Type)
	}
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "// %sCodec composes the field codecs in declaration order,\n", td.Name)
	fmt.Fprintf(buf, "// first field most significant.\n")
	fmt.Fprintf(buf, "func %sCodec() linearize.Bijection[%s] {\n", td.Name, td.Name)
	fmt.Fprintf(buf, "\treturn linearize.Product(\n")
	for _, f := range td.Fields {
		name := exportName(f.Name)
		fmt.Fprintf(buf, "\t\tlinearize.Field(%s,\n", codecExpr(f.Type))
		fmt.Fprintf(buf, "\t\t\tfunc(s *%s) %s { return s.%s },\n", td.Name, f.Type, name)
		fmt.Fprintf(buf, "\t\t\tfunc(s *%s, v %s) { s.%s = v }),\n", td.Name, f.Type, name)
	}
	buf.WriteString("\t)\n}\n")
}

func emitUnion(buf *bytes.Buffer, td TypeDef) {
	marker := "is" + td.Name
	fmt.Fprintf(buf, "\ntype %s interface {\n\t%s()\n}\n", td.Name, marker)

	for _, v := range td.Variants {
		name := td.Name + exportName(v.Name)
		if v.Payload == "" {
			fmt.Fprintf(buf, "\ntype %s struct{}\n", name)
		} else {
			fmt.Fprintf(buf, "\ntype %s struct {\n\tValue %s\n}\n", name, v.Payload)
		}
		fmt.Fprintf(buf, "\nfunc (%s) %s() {}\n", name, marker)
	}

	fmt.Fprintf(buf, "\n// %sCodec lays the variants out in declaration order, each\n", td.Name)
	fmt.Fprintf(buf, "// occupying a contiguous run of indexes.\n")
	fmt.Fprintf(buf, "func %sCodec() linearize.Bijection[%s] {\n", td.Name, td.Name)
	fmt.Fprintf(buf, "\treturn linearize.Sum(\n")
	for _, v := range td.Variants {
		name := td.Name + exportName(v.Name)
		if v.Payload == "" {
			fmt.Fprintf(buf, "\t\tlinearize.Case[%s](%s{},\n", td.Name, name)
			fmt.Fprintf(buf, "\t\t\tfunc(k %s) bool { _, ok := k.(%s); return ok }),\n", td.Name, name)
		} else {
			fmt.Fprintf(buf, "\t\tlinearize.Variant(%s,\n", codecExpr(v.Payload))
			fmt.Fprintf(buf, "\t\t\tfunc(p %s) %s { return %s{Value: p} },\n", v.Payload, td.Name, name)
			fmt.Fprintf(buf, "\t\t\tfunc(k %s) (%s, bool) {\n", td.Name, v.Payload)
			fmt.Fprintf(buf, "\t\t\t\tv, ok := k.(%s)\n", name)
			fmt.Fprintf(buf, "\t\t\t\treturn v.Value, ok\n")
			fmt.Fprintf(buf, "\t\t\t}),\n")
		}
	}
	buf.WriteString("\t)\n}\n")
}

// codecExpr resolves a type reference to the expression that builds
// its codec.
func codecExpr(ref string) string {
	if expr, ok := builtinCodecs[ref]; ok {
		return expr
	}
	return ref + "Codec()"
}

// exportName turns a schema name like "dark_red" or "dark-red" into
// an exported Go identifier fragment, "DarkRed".
func exportName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
