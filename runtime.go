package binstruct

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/singleflight"
)

// Loader creates the codec for a struct type. The Dispatcher passed in is the
// one the codec must use for nested struct fields.
type Loader interface {
	Load(t reflect.Type, d Dispatcher) (AnyCodec, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(t reflect.Type, d Dispatcher) (AnyCodec, error)

func (f LoaderFunc) Load(t reflect.Type, d Dispatcher) (AnyCodec, error) { return f(t, d) }

// Option configures a Runtime.
type Option func(*Runtime)

// WithLoader replaces the registry lookup used to create codecs.
func WithLoader(l Loader) Option {
	return func(r *Runtime) {
		if l != nil {
			r.loader = l
		}
	}
}

// Runtime is the default Dispatcher. It resolves codecs lazily by type and
// keeps exactly one codec instance per type for its lifetime.
//
// A Runtime is safe for concurrent use. Loaders may resolve other types through
// the same Runtime while creating a codec, but not the type being created.
type Runtime struct {
	loader Loader
	codecs *xsync.Map[reflect.Type, AnyCodec]
	group  singleflight.Group // keyed by codec name
}

var _ Dispatcher = (*Runtime)(nil)

// Default is the Runtime used by the package-level helpers when no Dispatcher is given.
var Default = New()

// New creates a Runtime that loads codecs from the registry unless configured otherwise.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		loader: RegistryLoader,
		codecs: xsync.NewMap[reflect.Type, AnyCodec](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Codec returns the codec for t, creating it on first use. Concurrent callers
// asking for the same type share a single creation. A failed creation is
// reported to all of them and retried by the next call.
func (r *Runtime) Codec(t reflect.Type) (AnyCodec, error) {
	if c, ok := r.codecs.Load(t); ok {
		return c, nil
	}
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, fmt.Errorf("%w: %v is not a named struct", ErrCodecNotFound, t)
	}

	v, err, _ := r.group.Do(CodecNameOf(t), func() (any, error) {
		if c, ok := r.codecs.Load(t); ok {
			return c, nil
		}
		c, err := r.loader.Load(t, r)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%w: loader returned no codec for %v", ErrCodecNotFound, t)
		}
		r.codecs.Store(t, c)
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(AnyCodec), nil
}

// Read implements Dispatcher.
func (r *Runtime) Read(t reflect.Type, src Source) (any, error) {
	c, err := r.Codec(t)
	if err != nil {
		return nil, err
	}
	return c.ReadAny(src)
}

// Write implements Dispatcher.
func (r *Runtime) Write(v any, sink Sink) error {
	if v == nil {
		return ErrNilValue
	}
	c, err := r.Codec(reflect.TypeOf(v))
	if err != nil {
		return err
	}
	return c.WriteAny(v, sink)
}

// Read decodes a T through d. Generated codecs call it for nested struct fields.
func Read[T any](d Dispatcher, src Source) (T, error) {
	var zero T
	if d == nil {
		d = Default
	}
	v, err := d.Read(reflect.TypeFor[T](), src)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, typeMismatch(reflect.TypeFor[T](), v)
	}
	return t, nil
}

// Write encodes v through d.
func Write[T any](d Dispatcher, v T, sink Sink) error {
	if d == nil {
		d = Default
	}
	return d.Write(v, sink)
}

// CodecFor returns the typed codec for T held by r.
func CodecFor[T any](r *Runtime) (Codec[T], error) {
	c, err := r.Codec(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return typed[T]{c}, nil
}

type typed[T any] struct {
	c AnyCodec
}

func (t typed[T]) Read(src Source) (T, error) {
	var zero T
	v, err := t.c.ReadAny(src)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, typeMismatch(reflect.TypeFor[T](), v)
	}
	return out, nil
}

func (t typed[T]) Write(v T, sink Sink) error {
	return t.c.WriteAny(v, sink)
}
