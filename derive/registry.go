// Package derive builds bijections for struct types by reflection.
//
// Field types resolve through a process-wide registry. Fixed-width
// integers and bool are pre-registered; enum-like and custom types are
// added with Register or RegisterEnum. Struct walks a type's exported
// fields in declaration order and composes their codecs the same way
// linearize.Product does, so a derived codec agrees with one assembled
// by hand.
package derive

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/arthur-debert/linearmap/linearize"
)

// adapter is the type-erased form of a bijection, operating on
// reflect.Values so codecs for different types can share one registry.
type adapter struct {
	length      int
	linearize   func(reflect.Value) int
	delinearize func(int) reflect.Value
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]adapter{}
)

func init() {
	mustRegister(linearize.Bool())
	mustRegister(linearize.Unit())
	mustRegister(linearize.NeverCodec())
	mustRegister(linearize.Uint8())
	mustRegister(linearize.Uint16())
	mustRegister(linearize.Uint32())
	mustRegister(linearize.Int8())
	mustRegister(linearize.Int16())
	mustRegister(linearize.Int32())
}

func adapt[T any](codec linearize.Bijection[T]) adapter {
	return adapter{
		length: codec.Length(),
		linearize: func(v reflect.Value) int {
			return codec.Linearize(v.Interface().(T))
		},
		delinearize: func(i int) reflect.Value {
			return reflect.ValueOf(codec.DelinearizeUnchecked(i))
		},
	}
}

// Register makes codec available for struct fields of type T. It fails
// if T is already registered.
func Register[T any](codec linearize.Bijection[T]) error {
	t := reflect.TypeFor[T]()
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[t]; dup {
		return fmt.Errorf("codec for %s already registered", t)
	}
	registry[t] = adapt(codec)
	return nil
}

// RegisterEnum registers T with the given values in order, like
// linearize.Enum.
func RegisterEnum[T comparable](values ...T) error {
	return Register(linearize.Enum(values...))
}

// MustRegister is Register but panics on error, for package init blocks.
func MustRegister[T any](codec linearize.Bijection[T]) {
	if err := Register(codec); err != nil {
		panic(err)
	}
}

func mustRegister[T any](codec linearize.Bijection[T]) {
	registry[reflect.TypeFor[T]()] = adapt(codec)
}

// lookup resolves a field type, deriving nested structs on the fly.
// Explicit registrations win over derivation, so a struct type can be
// given a custom layout.
func lookup(t reflect.Type) (adapter, error) {
	registryMu.RLock()
	ad, ok := registry[t]
	registryMu.RUnlock()
	if ok {
		return ad, nil
	}
	if t.Kind() == reflect.Struct {
		return deriveStruct(t)
	}
	return adapter{}, fmt.Errorf("no codec registered for %s", t)
}
