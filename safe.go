package fpcomplex

import (
	"sync"
	"unsafe"
)

// Safe wraps a *Complex with a mutex so multiple goroutines can operate on it safely.
// All operations return NEW Safe results; the wrapped value is never mutated externally.
type Safe struct {
	mu sync.RWMutex
	c  *Complex
}

// NewSafe allocates a new Safe complex with the given precision.
func NewSafe(p Prec) *Safe { return &Safe{c: New(p)} }

// WrapSafe wraps an existing *Complex. After wrapping, do NOT use the raw *Complex concurrently.
func WrapSafe(c *Complex) *Safe { return &Safe{c: c} }

// Prec reads the precision.
func (s *Safe) Prec() Prec { s.mu.RLock(); p := s.c.prec; s.mu.RUnlock(); return p }

// SetPrec updates the precision (rounding the value).
func (s *Safe) SetPrec(p Prec) { s.mu.Lock(); s.c.SetPrec(p); s.mu.Unlock() }

// Real reads the real part.
func (s *Safe) Real() float64 { s.mu.RLock(); x := s.c.re; s.mu.RUnlock(); return x }

// Imag reads the imaginary part.
func (s *Safe) Imag() float64 { s.mu.RLock(); x := s.c.im; s.mu.RUnlock(); return x }

// String renders the wrapped value (read-only).
func (s *Safe) String() string {
	s.mu.RLock()
	out := s.c.String()
	s.mu.RUnlock()
	return out
}

// Unsafe returns the underlying *Complex. Use with care (no internal locking).
func (s *Safe) Unsafe() *Complex { return s.c }

// lockPairR acquires read locks on a and b in a stable address order to avoid deadlocks.
func lockPairR(a, b *Safe) (unlock func()) {
	if a == b {
		a.mu.RLock()
		return func() { a.mu.RUnlock() }
	}
	ap := uintptr(unsafe.Pointer(a))
	bp := uintptr(unsafe.Pointer(b))
	if ap < bp {
		a.mu.RLock()
		b.mu.RLock()
		return func() { b.mu.RUnlock(); a.mu.RUnlock() }
	}
	b.mu.RLock()
	a.mu.RLock()
	return func() { a.mu.RUnlock(); b.mu.RUnlock() }
}

// binary applies op under both locks and returns a new Safe result at the
// wider precision.
func binary(a, b *Safe, op func(c, x, y *Complex) *Complex) *Safe {
	unlock := lockPairR(a, b)
	defer unlock()
	res := NewSafe(widest(a.c.prec, b.c.prec))
	op(res.c, a.c, b.c)
	return res
}

// unary applies op under a's read lock and returns a new Safe result.
func unary(a *Safe, op func(c, x *Complex) *Complex) *Safe {
	a.mu.RLock()
	res := NewSafe(a.c.prec)
	op(res.c, a.c)
	a.mu.RUnlock()
	return res
}

// --- Non-mutating arithmetic: each returns a NEW Safe result ---

func (a *Safe) Neg() *Safe  { return unary(a, (*Complex).Neg) }
func (a *Safe) Conj() *Safe { return unary(a, (*Complex).Conj) }
func (a *Safe) Inv() *Safe  { return unary(a, (*Complex).Inv) }

func (a *Safe) Add(b *Safe) *Safe { return binary(a, b, (*Complex).Add) }
func (a *Safe) Sub(b *Safe) *Safe { return binary(a, b, (*Complex).Sub) }
func (a *Safe) Mul(b *Safe) *Safe { return binary(a, b, (*Complex).Mul) }
func (a *Safe) Div(b *Safe) *Safe { return binary(a, b, (*Complex).Div) }
func (a *Safe) Pow(b *Safe) *Safe { return binary(a, b, (*Complex).Pow) }

// Elementary (read one, produce new)
func (a *Safe) Sqrt() *Safe { return unary(a, (*Complex).Sqrt) }
func (a *Safe) Sin() *Safe  { return unary(a, (*Complex).Sin) }
func (a *Safe) Cos() *Safe  { return unary(a, (*Complex).Cos) }

// Polar reads (no new value)
func (a *Safe) Abs() float64 {
	a.mu.RLock()
	x := a.c.Abs()
	a.mu.RUnlock()
	return x
}

func (a *Safe) Arg() float64 {
	a.mu.RLock()
	x := a.c.Arg()
	a.mu.RUnlock()
	return x
}

// Constructors from strings
func ParseSafe(s string, p Prec) (*Safe, error) {
	z, err := Parse(s, p)
	if err != nil {
		return nil, err
	}
	return WrapSafe(z), nil
}

func MustParseSafe(s string, p Prec) *Safe {
	return WrapSafe(MustParse(s, p))
}
