package binstruct

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

type registration struct {
	typ     reflect.Type
	factory func(Dispatcher) AnyCodec
}

// registry maps full codec names to factories. Generated packages fill it from init.
var registry = xsync.NewMap[string, registration]()

// Register makes a codec factory available under name. It is called by generated
// code; name must be the FullCodecName of T.
//
// Register panics when called twice with the same name, or when name does not
// match the name the naming strategy derives for T.
func Register[T any](name string, factory func(Dispatcher) Codec[T]) {
	t := reflect.TypeFor[T]()
	if factory == nil {
		panic("binstruct: Register factory is nil for " + name)
	}
	if want := CodecNameOf(t); want != name {
		panic(fmt.Sprintf("binstruct: Register called with %q for %v, want %q", name, t, want))
	}
	reg := registration{
		typ:     t,
		factory: func(d Dispatcher) AnyCodec { return Erase(factory(d)) },
	}
	if _, loaded := registry.LoadOrStore(name, reg); loaded {
		panic("binstruct: Register called twice for " + name)
	}
}

// Registered reports whether a codec is registered under name.
func Registered(name string) bool {
	_, ok := registry.Load(name)
	return ok
}

// RegistryLoader resolves codecs from the process-wide registry filled by generated packages.
var RegistryLoader Loader = LoaderFunc(loadRegistered)

func loadRegistered(t reflect.Type, d Dispatcher) (AnyCodec, error) {
	name := CodecNameOf(t)
	reg, ok := registry.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s for %v", ErrCodecNotFound, name, t)
	}
	if reg.typ != t {
		return nil, fmt.Errorf("%w: %s is registered for %v, not %v", ErrCodecMismatch, name, reg.typ, t)
	}
	return reg.factory(d), nil
}
