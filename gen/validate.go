package gen

import (
	"fmt"
	"go/token"
)

// builtinCodecs maps builtin type references to the linearize
// constructor that produces their codec.
var builtinCodecs = map[string]string{
	"bool":   "linearize.Bool()",
	"uint8":  "linearize.Uint8()",
	"uint16": "linearize.Uint16()",
	"uint32": "linearize.Uint32()",
	"int8":   "linearize.Int8()",
	"int16":  "linearize.Int16()",
	"int32":  "linearize.Int32()",
}

// Validate checks a schema for the errors the emitter cannot recover
// from: bad identifiers, duplicate names, unknown kinds and forward or
// dangling type references.
func Validate(s *Schema) error {
	if !token.IsIdentifier(s.Package) {
		return fmt.Errorf("package name %q is not a valid identifier", s.Package)
	}
	if len(s.Types) == 0 {
		return fmt.Errorf("schema declares no types")
	}

	declared := make(map[string]bool, len(s.Types))
	resolvable := func(ref string) bool {
		_, builtin := builtinCodecs[ref]
		return builtin || declared[ref]
	}

	for _, td := range s.Types {
		if !token.IsIdentifier(td.Name) || !token.IsExported(td.Name) {
			return fmt.Errorf("type name %q must be an exported identifier", td.Name)
		}
		if declared[td.Name] {
			return fmt.Errorf("type %s declared twice", td.Name)
		}
		if _, shadows := builtinCodecs[td.Name]; shadows {
			return fmt.Errorf("type %s shadows a builtin type", td.Name)
		}

		switch td.Kind {
		case KindEnum:
			if err := validateEnum(td); err != nil {
				return err
			}
		case KindStruct:
			if err := validateStruct(td, resolvable); err != nil {
				return err
			}
		case KindUnion:
			if err := validateUnion(td, resolvable); err != nil {
				return err
			}
		default:
			return fmt.Errorf("type %s: unknown kind %q (want enum, struct or union)", td.Name, td.Kind)
		}

		declared[td.Name] = true
	}
	return nil
}

func validateEnum(td TypeDef) error {
	if len(td.Values) == 0 {
		return fmt.Errorf("enum %s has no values", td.Name)
	}
	// Emitted enums are backed by uint8.
	if len(td.Values) > 256 {
		return fmt.Errorf("enum %s has %d values, the maximum is 256", td.Name, len(td.Values))
	}
	if len(td.Fields) > 0 || len(td.Variants) > 0 {
		return fmt.Errorf("enum %s must not declare fields or variants", td.Name)
	}
	seen := make(map[string]bool, len(td.Values))
	for _, v := range td.Values {
		name := exportName(v)
		if !token.IsIdentifier(name) {
			return fmt.Errorf("enum %s: value %q does not form an identifier", td.Name, v)
		}
		if seen[name] {
			return fmt.Errorf("enum %s: duplicate value %q", td.Name, v)
		}
		seen[name] = true
	}
	return nil
}

func validateStruct(td TypeDef, resolvable func(string) bool) error {
	if len(td.Values) > 0 || len(td.Variants) > 0 {
		return fmt.Errorf("struct %s must not declare values or variants", td.Name)
	}
	seen := make(map[string]bool, len(td.Fields))
	for _, f := range td.Fields {
		name := exportName(f.Name)
		if !token.IsIdentifier(name) {
			return fmt.Errorf("struct %s: field %q does not form an identifier", td.Name, f.Name)
		}
		if seen[name] {
			return fmt.Errorf("struct %s: duplicate field %q", td.Name, f.Name)
		}
		seen[name] = true
		if !resolvable(f.Type) {
			return fmt.Errorf("struct %s: field %s refers to unknown type %q (types must be builtin or declared earlier)", td.Name, f.Name, f.Type)
		}
	}
	return nil
}

func validateUnion(td TypeDef, resolvable func(string) bool) error {
	if len(td.Values) > 0 || len(td.Fields) > 0 {
		return fmt.Errorf("union %s must not declare values or fields", td.Name)
	}
	seen := make(map[string]bool, len(td.Variants))
	for _, v := range td.Variants {
		name := exportName(v.Name)
		if !token.IsIdentifier(name) {
			return fmt.Errorf("union %s: variant %q does not form an identifier", td.Name, v.Name)
		}
		if seen[name] {
			return fmt.Errorf("union %s: duplicate variant %q", td.Name, v.Name)
		}
		seen[name] = true
		if v.Payload != "" && !resolvable(v.Payload) {
			return fmt.Errorf("union %s: variant %s refers to unknown payload type %q", td.Name, v.Name, v.Payload)
		}
	}
	return nil
}
