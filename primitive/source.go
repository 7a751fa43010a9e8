package primitive

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"fixturegen/provider"
	"fixturegen/random"
)

const (
	// DefaultStringLength is the exclusive upper bound of generated text length.
	DefaultStringLength = 15

	maxUnixSeconds = 4102444800 // 2100-01-01T00:00:00Z
)

// NewSource registers a leaf generator for every kind enabled by categories.
// Text kinds use DefaultStringLength; use NewStringSource instead of
// CategoryText when a different bound is needed.
func NewSource(rng random.Source, categories CategoryEnum) provider.Map {
	out := make(provider.Map)

	text := newTextGenerator(rng, DefaultStringLength)
	for _, kind := range categories.Kinds() {
		out[kind.ReflectType()] = generatorFor(rng, kind, text)
	}

	return out
}

// DefaultSources returns the numeric, boolean, time and identifier generators
// plus a string source bounded by DefaultStringLength.
func DefaultSources(rng random.Source) []provider.Source {
	sources, _ := Sources(rng, DefaultStringLength)
	return sources
}

// Sources is DefaultSources with text bounded by maxStringLength.
func Sources(rng random.Source, maxStringLength int) ([]provider.Source, error) {
	strings, err := NewStringSource(rng, maxStringLength)
	if err != nil {
		return nil, err
	}

	return []provider.Source{
		NewSource(rng, CategoryAll&^CategoryText),
		strings,
	}, nil
}

func generatorFor(rng random.Source, kind KindEnum, text textGenerator) provider.Func {
	switch kind {
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return integerGenerator(rng, kind)
	case KindFloat32:
		return func() any { return float32(rng.Float64()) }
	case KindFloat64:
		return func() any { return rng.Float64() }
	case KindBool:
		return func() any { return rng.IntN(2) == 1 }
	case KindString:
		return func() any { return string(text()) }
	case KindBytes:
		return func() any { return text() }
	case KindTime:
		return func() any {
			return time.Unix(int64(rng.Uint64()%maxUnixSeconds), 0).UTC()
		}
	case KindDuration:
		return func() any { return time.Duration(rng.Uint64() % uint64(24*time.Hour)) }
	case KindUUID:
		return func() any { return uuid.Must(uuid.NewRandomFromReader(random.Reader(rng))) }
	default:
		panic("no leaf generator for kind " + kind.String())
	}
}

// integerGenerator draws the low Bits of a uint64. Signed kinds lose the sign
// bit, so they are never negative.
func integerGenerator(rng random.Source, kind KindEnum) provider.Func {
	shift := 64 - kind.Bits()
	if kind.IsSigned() {
		shift++
	}

	t := kind.ReflectType()

	return func() any {
		return reflect.ValueOf(rng.Uint64() >> shift).Convert(t).Interface()
	}
}

// StringSource generates lowercase latin text.
type StringSource struct {
	text textGenerator
}

// NewStringSource returns a source for string and []byte values with length
// in [0, maxLength).
func NewStringSource(rng random.Source, maxLength int) (*StringSource, error) {
	if maxLength <= 0 {
		return nil, ErrInvalidLength
	}

	return &StringSource{text: newTextGenerator(rng, maxLength)}, nil
}

func (s *StringSource) Generators() map[reflect.Type]provider.Func {
	return map[reflect.Type]provider.Func{
		KindString.ReflectType(): func() any { return string(s.text()) },
		KindBytes.ReflectType():  func() any { return s.text() },
	}
}

type textGenerator func() []byte

func newTextGenerator(rng random.Source, maxLength int) textGenerator {
	return func() []byte {
		buf := make([]byte, rng.IntN(maxLength))
		for i := range buf {
			buf[i] = byte('a' + rng.IntN(26))
		}

		return buf
	}
}
