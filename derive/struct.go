package derive

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/linearmap/linearize"
)

type structField struct {
	index int
	name  string
	ad    adapter
}

// structCodec composes field codecs as a mixed-radix number, first field
// most significant, matching linearize.Product.
type structCodec struct {
	typ    reflect.Type
	fields []structField
	radix  []int
	length int
}

func (c *structCodec) Length() int { return c.length }

func (c *structCodec) linearizeValue(rv reflect.Value) int {
	index := 0
	for i, f := range c.fields {
		index += f.ad.linearize(rv.Field(f.index)) * c.radix[i]
	}
	return index
}

func (c *structCodec) delinearizeValue(rv reflect.Value, index int) {
	for i, f := range c.fields {
		digit := (index / c.radix[i]) % f.ad.length
		rv.Field(f.index).Set(f.ad.delinearize(digit))
	}
}

func deriveStruct(t reflect.Type) (adapter, error) {
	if t.Kind() != reflect.Struct {
		return adapter{}, fmt.Errorf("expected struct type, got %s", t.Kind())
	}
	codec := &structCodec{typ: t}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			return adapter{}, fmt.Errorf("%s: field %s is unexported; every field must round-trip", t, field.Name)
		}
		if tag := field.Tag.Get("linear"); tag == "-" {
			// A skipped field could not be reconstructed from an index,
			// so the mapping would stop being one-to-one.
			return adapter{}, fmt.Errorf("%s: field %s: skipping fields is not supported", t, field.Name)
		}
		ad, err := lookup(field.Type)
		if err != nil {
			return adapter{}, fmt.Errorf("%s: field %s: %w", t, field.Name, err)
		}
		codec.fields = append(codec.fields, structField{index: i, name: field.Name, ad: ad})
	}

	codec.radix = make([]int, len(codec.fields))
	codec.length = 1
	for i := len(codec.fields) - 1; i >= 0; i-- {
		codec.radix[i] = codec.length
		codec.length *= codec.fields[i].ad.length
	}

	return adapter{
		length: codec.length,
		linearize: func(v reflect.Value) int {
			return codec.linearizeValue(v)
		},
		delinearize: func(i int) reflect.Value {
			rv := reflect.New(codec.typ).Elem()
			codec.delinearizeValue(rv, i)
			return rv
		},
	}, nil
}

// typedStruct binds a derived struct adapter back to its Go type.
type typedStruct[T any] struct {
	ad adapter
}

func (c typedStruct[T]) Length() int { return c.ad.length }

func (c typedStruct[T]) Linearize(key T) int {
	return c.ad.linearize(reflect.ValueOf(&key).Elem())
}

func (c typedStruct[T]) DelinearizeUnchecked(index int) T {
	return c.ad.delinearize(index).Interface().(T)
}

// Struct derives a bijection for struct type T from the registered
// codecs of its fields. Fields compose in declaration order, first
// field most significant.
func Struct[T any]() (linearize.Bijection[T], error) {
	ad, err := deriveStruct(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return typedStruct[T]{ad: ad}, nil
}

// MustStruct is Struct but panics on error, for package var blocks.
func MustStruct[T any]() linearize.Bijection[T] {
	codec, err := Struct[T]()
	if err != nil {
		panic(err)
	}
	return codec
}
