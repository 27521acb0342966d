package binstruct

import (
	"encoding/binary"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type point struct {
	X, Y int32
}

type segment struct {
	From, To point
	Weight   int8
}

type unregistered struct {
	V int32
}

type pointCodec struct{}

func (pointCodec) Read(src Source) (v point, err error) {
	var x, y int32
	if x, err = src.ReadInt32(); err != nil {
		return v, err
	}
	if y, err = src.ReadInt32(); err != nil {
		return v, err
	}
	return point{X: x, Y: y}, nil
}

func (pointCodec) Write(v point, sink Sink) error {
	if err := sink.WriteInt32(v.X); err != nil {
		return err
	}
	return sink.WriteInt32(v.Y)
}

type segmentCodec struct {
	d Dispatcher
}

func (c *segmentCodec) Read(src Source) (v segment, err error) {
	var from, to point
	if from, err = Read[point](c.d, src); err != nil {
		return v, err
	}
	if to, err = Read[point](c.d, src); err != nil {
		return v, err
	}
	var w int8
	if w, err = src.ReadInt8(); err != nil {
		return v, err
	}
	return segment{From: from, To: to, Weight: w}, nil
}

func (c *segmentCodec) Write(v segment, sink Sink) error {
	if err := c.d.Write(v.From, sink); err != nil {
		return err
	}
	if err := c.d.Write(v.To, sink); err != nil {
		return err
	}
	return sink.WriteInt8(v.Weight)
}

func init() {
	Register(CodecNameOf(reflect.TypeFor[point]()), func(Dispatcher) Codec[point] { return pointCodec{} })
	Register(CodecNameOf(reflect.TypeFor[segment]()), func(d Dispatcher) Codec[segment] { return &segmentCodec{d: d} })
}

type RuntimeTestSuite struct {
	suite.Suite
}

func TestRuntime(t *testing.T) {
	suite.Run(t, new(RuntimeTestSuite))
}

func (s *RuntimeTestSuite) TestRegister() {
	s.True(Registered("binstructgen/github.com/oy3o/binstruct.point_Codec"))
	s.False(Registered(CodecNameOf(reflect.TypeFor[unregistered]())))

	s.Run("Should panic on a duplicate name", func() {
		s.Panics(func() {
			Register(CodecNameOf(reflect.TypeFor[point]()), func(Dispatcher) Codec[point] { return pointCodec{} })
		})
	})

	s.Run("Should panic on a name that does not match the type", func() {
		s.Panics(func() {
			Register("binstructgen/example.com/other.point_Codec", func(Dispatcher) Codec[point] { return pointCodec{} })
		})
	})

	s.Run("Should panic on a nil factory", func() {
		s.Panics(func() {
			Register[unregistered](CodecNameOf(reflect.TypeFor[unregistered]()), nil)
		})
		s.False(Registered(CodecNameOf(reflect.TypeFor[unregistered]())))
	})
}

func (s *RuntimeTestSuite) TestDispatch() {
	v := segment{From: point{1, 2}, To: point{-3, -4}, Weight: 9}

	s.Run("Should delegate nested structs to the dispatcher", func() {
		data, err := Marshal(nil, v, BE)
		s.Require().NoError(err)
		s.Equal([]byte{
			0, 0, 0, 1, 0, 0, 0, 2,
			0xFF, 0xFF, 0xFF, 0xFD, 0xFF, 0xFF, 0xFF, 0xFC,
			9,
		}, data)

		got, err := Unmarshal[segment](nil, data, BE)
		s.Require().NoError(err)
		s.Equal(v, got)
	})

	s.Run("Should use the byte order of the transport", func() {
		data, err := Marshal(New(), v, LE)
		s.Require().NoError(err)
		s.Equal([]byte{1, 0, 0, 0}, data[:4])

		got, err := Unmarshal[segment](New(), data, LE)
		s.Require().NoError(err)
		s.Equal(v, got)
	})

	s.Run("Should leave the order of a caller's reader unchanged", func() {
		data, err := Marshal(nil, point{1, 2}, LE)
		s.Require().NoError(err)
		data = append(data, 0, 0, 0, 3, 0, 0, 0, 4)

		r, _ := NewReader(NewBytesReader(data))
		r.WithByteOrder(BE)
		first, err := Decode[point](nil, r, LE)
		s.Require().NoError(err)
		s.Equal(point{1, 2}, first)
		s.Equal(binary.ByteOrder(BE), r.Order())

		second, err := Read[point](nil, r)
		s.Require().NoError(err)
		s.Equal(point{3, 4}, second)
	})

	s.Run("Should write through the generic helper", func() {
		w, _ := NewWriter(NewBytesWriter(make([]byte, 8)))
		s.Require().NoError(Write(nil, point{5, 6}, w))
		r, _ := NewReader(NewBytesReader(w.w.(*BytesWriter).Bytes()))
		got, err := Read[point](nil, r)
		s.Require().NoError(err)
		s.Equal(point{5, 6}, got)
	})
}

func (s *RuntimeTestSuite) TestErrors() {
	rt := New()

	s.Run("Should report a struct without a codec", func() {
		_, err := rt.Codec(reflect.TypeFor[unregistered]())
		s.ErrorIs(err, ErrCodecNotFound)
		s.Contains(err.Error(), "unregistered_Codec")

		_, err = Marshal(rt, unregistered{1}, BE)
		s.ErrorIs(err, ErrCodecNotFound)
	})

	s.Run("Should reject types that are not structs", func() {
		_, err := rt.Codec(reflect.TypeFor[int32]())
		s.ErrorIs(err, ErrCodecNotFound)

		_, err = rt.Codec(reflect.TypeFor[*point]())
		s.ErrorIs(err, ErrCodecNotFound)

		_, err = rt.Codec(reflect.TypeFor[struct{ X int32 }]())
		s.ErrorIs(err, ErrCodecNotFound)
	})

	s.Run("Should reject a nil value", func() {
		w, _ := NewWriter(NewBytesWriter(make([]byte, 8)))
		s.ErrorIs(rt.Write(nil, w), ErrNilValue)
	})

	s.Run("Should reject a value of another type", func() {
		c := Erase[point](pointCodec{})
		w, _ := NewWriter(NewBytesWriter(make([]byte, 8)))
		s.ErrorIs(c.WriteAny(segment{}, w), ErrCodecMismatch)
	})

	s.Run("Should not return a partial value", func() {
		data, err := Marshal(rt, segment{From: point{1, 1}, To: point{2, 2}}, BE)
		s.Require().NoError(err)
		got, err := Unmarshal[segment](rt, data[:12], BE)
		s.ErrorIs(err, ErrIncompleteRead)
		s.Zero(got)
	})
}

type countingLoader struct {
	calls atomic.Int32
	fail  atomic.Bool
}

var errLoad = errors.New("load failed")

func (l *countingLoader) Load(t reflect.Type, d Dispatcher) (AnyCodec, error) {
	l.calls.Add(1)
	if l.fail.Load() {
		return nil, errLoad
	}
	return RegistryLoader.Load(t, d)
}

func (s *RuntimeTestSuite) TestCache() {
	s.Run("Should create each codec once under concurrency", func() {
		loader := &countingLoader{}
		rt := New(WithLoader(loader))

		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			codecs = make(map[AnyCodec]struct{})
		)
		for range 64 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c, err := rt.Codec(reflect.TypeFor[segment]())
				assert.NoError(s.T(), err)
				mu.Lock()
				codecs[c] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()
		s.EqualValues(1, loader.calls.Load())
		s.Len(codecs, 1)
	})

	s.Run("Should not cache a failed load", func() {
		loader := &countingLoader{}
		loader.fail.Store(true)
		rt := New(WithLoader(loader))

		_, err := rt.Codec(reflect.TypeFor[point]())
		s.ErrorIs(err, errLoad)

		loader.fail.Store(false)
		_, err = rt.Codec(reflect.TypeFor[point]())
		s.NoError(err)
		_, err = rt.Codec(reflect.TypeFor[point]())
		s.NoError(err)
		s.EqualValues(2, loader.calls.Load())
	})

	s.Run("Should hand the runtime itself to nested codecs", func() {
		var seen Dispatcher
		rt := New(WithLoader(LoaderFunc(func(t reflect.Type, d Dispatcher) (AnyCodec, error) {
			seen = d
			return RegistryLoader.Load(t, d)
		})))
		_, err := rt.Codec(reflect.TypeFor[segment]())
		s.Require().NoError(err)
		s.Same(rt, seen)
	})

	s.Run("Should let a loader resolve other types", func() {
		var rt *Runtime
		rt = New(WithLoader(LoaderFunc(func(t reflect.Type, d Dispatcher) (AnyCodec, error) {
			if t == reflect.TypeFor[segment]() {
				if _, err := rt.Codec(reflect.TypeFor[point]()); err != nil {
					return nil, err
				}
			}
			return RegistryLoader.Load(t, d)
		})))

		done := make(chan error, 1)
		go func() {
			_, err := rt.Codec(reflect.TypeFor[segment]())
			done <- err
		}()
		select {
		case err := <-done:
			s.Require().NoError(err)
		case <-time.After(2 * time.Second):
			s.FailNow("creating a codec blocked while its loader resolved another type")
		}

		data, err := Marshal(rt, segment{From: point{1, 2}, Weight: 3}, BE)
		s.Require().NoError(err)
		s.Len(data, 17)
	})

	s.Run("Should reject a loader that returns no codec", func() {
		calls := 0
		rt := New(WithLoader(LoaderFunc(func(t reflect.Type, d Dispatcher) (AnyCodec, error) {
			calls++
			if calls == 1 {
				return nil, nil
			}
			return RegistryLoader.Load(t, d)
		})))

		_, err := rt.Codec(reflect.TypeFor[point]())
		s.ErrorIs(err, ErrCodecNotFound)
		c, err := rt.Codec(reflect.TypeFor[point]())
		s.Require().NoError(err)
		s.NotNil(c)
	})

	s.Run("Should recover from a panicking loader", func() {
		calls := 0
		rt := New(WithLoader(LoaderFunc(func(t reflect.Type, d Dispatcher) (AnyCodec, error) {
			calls++
			if calls == 1 {
				panic("boom")
			}
			return RegistryLoader.Load(t, d)
		})))

		s.Panics(func() { _, _ = rt.Codec(reflect.TypeFor[point]()) })
		_, err := rt.Codec(reflect.TypeFor[point]())
		s.NoError(err)
		s.Equal(2, calls)
	})

	s.Run("Should ignore a nil loader", func() {
		rt := New(WithLoader(nil))
		c, err := CodecFor[point](rt)
		s.Require().NoError(err)

		w, _ := NewWriter(NewBytesWriter(make([]byte, 8)))
		s.Require().NoError(c.Write(point{7, 8}, w))
	})
}

func TestLoaderFunc(t *testing.T) {
	called := false
	l := LoaderFunc(func(reflect.Type, Dispatcher) (AnyCodec, error) {
		called = true
		return nil, errLoad
	})
	_, err := l.Load(reflect.TypeFor[point](), Default)
	require.ErrorIs(t, err, errLoad)
	assert.True(t, called)
}
