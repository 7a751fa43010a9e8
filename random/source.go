// Package random provides the single source of randomness shared by the
// generator and the leaf providers built on top of it.
package random

//go:generate mockgen -source=source.go -destination=mocks/mocks.go -package=mocks Source

import (
	"errors"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"fixturegen/utils"
)

var ErrInvalidRange = errors.New("invalid random range")

// Source is a source of uniformly distributed values.
// Implementations shared between goroutines must make every draw atomic.
type Source interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
	Int64() int64
	Uint64() uint64
	Float64() float64
}

// Locked is a PCG backed Source guarded by a mutex.
type Locked struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Locked source seeded with seed. The same seed yields the same
// sequence of draws as long as draws are not interleaved between goroutines.
func New(seed uint64) *Locked {
	return &Locked{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewFromTime returns a Locked source seeded with the current time.
func NewFromTime() *Locked {
	return New(uint64(time.Now().UnixNano()))
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rnd.IntN(n)
}

func (l *Locked) Int64() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rnd.Int64()
}

func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rnd.Uint64()
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rnd.Float64()
}

// Between draws a value in [lo, hi], both inclusive.
func Between(src Source, lo, hi int) (int, error) {
	if !utils.IsInRange(0, lo, hi) {
		return 0, ErrInvalidRange
	}

	if lo == hi {
		return lo, nil
	}

	return lo + src.IntN(hi-lo+1), nil
}

// Reader adapts src to an io.Reader producing random bytes.
func Reader(src Source) io.Reader {
	return reader{src: src}
}

type reader struct {
	src Source
}

func (r reader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.src.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}

	return len(p), nil
}
