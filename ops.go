package hexcolor

import "math"

// Add returns the channel-wise saturating sum of a and b: each channel of
// the result is clamped to 255 rather than wrapping.
//
// The alpha channels combine asymmetrically. If both are present, they add
// like the other channels; if only a's is present, it carries over unchanged;
// if a's is absent, the result has no alpha channel regardless of b.
func Add(a, b Color) Color {
	return Color{
		R: satAdd(a.R, b.R),
		G: satAdd(a.G, b.G),
		B: satAdd(a.B, b.B),
		A: combineAlpha(a.A, b.A, satAdd),
	}
}

// Sub returns the channel-wise saturating difference of a and b: each
// channel of the result is clamped to 0 rather than wrapping. The alpha
// channels combine by the same rule as in Add.
func Sub(a, b Color) Color {
	return Color{
		R: satSub(a.R, b.R),
		G: satSub(a.G, b.G),
		B: satSub(a.B, b.B),
		A: combineAlpha(a.A, b.A, satSub),
	}
}

func satAdd(x, y uint8) uint8 {
	if s := uint16(x) + uint16(y); s <= 0xFF {
		return uint8(s)
	}
	return 0xFF
}

func satSub(x, y uint8) uint8 {
	if x < y {
		return 0
	}
	return x - y
}

// The left operand alone decides whether the result has an alpha channel;
// a present right alpha combines with it but never creates one.
func combineAlpha(l, r Alpha, op func(uint8, uint8) uint8) Alpha {
	switch {
	case !l.Valid:
		return Alpha{}
	case !r.Valid:
		return l
	}
	return Alpha{Value: op(l.Value, r.Value), Valid: true}
}

// Scalar is the set of numeric types accepted by the scalar arithmetic
// functions.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// A DomainError reports an arithmetic operation applied outside its defined
// domain. The only such operation is scalar division by zero.
type DomainError struct {
	Op string
}

func (e *DomainError) Error() string { return "hexcolor: " + e.Op + " by zero" }

// AddScalar returns c with n added to each channel, including the alpha
// channel if one is present; an absent alpha channel stays absent. Channels
// are widened before the addition and the result is clamped to [0, 255], so
// no scalar value can overflow or wrap. Scalar addition is commutative:
// there is no distinct scalar-first form.
func AddScalar[T Scalar](c Color, n T) Color {
	f := float64(n)
	return mapChannels(c, func(ch uint8) uint8 { return clampByte(float64(ch) + f) })
}

// SubScalar returns c with n subtracted from each channel, with the same
// widening, clamping, and alpha handling as AddScalar. It subtracts the
// scalar from the channel; the mirrored form is not defined.
func SubScalar[T Scalar](c Color, n T) Color {
	f := float64(n)
	return mapChannels(c, func(ch uint8) uint8 { return clampByte(float64(ch) - f) })
}

// MulScalar returns c with each channel multiplied by n, with the same
// widening, clamping, and alpha handling as AddScalar. Like addition, scalar
// multiplication is commutative.
func MulScalar[T Scalar](c Color, n T) Color {
	f := float64(n)
	return mapChannels(c, func(ch uint8) uint8 { return clampByte(float64(ch) * f) })
}

// DivScalar returns c with each channel divided by n, with the same
// widening, clamping, and alpha handling as AddScalar. A zero divisor of any
// numeric type, float zero included, is reported as a *DomainError rather
// than saturating.
func DivScalar[T Scalar](c Color, n T) (Color, error) {
	if n == 0 {
		return Color{}, &DomainError{Op: "divide"}
	}
	f := float64(n)
	return mapChannels(c, func(ch uint8) uint8 { return clampByte(float64(ch) / f) }), nil
}

func mapChannels(c Color, f func(uint8) uint8) Color {
	out := Color{R: f(c.R), G: f(c.G), B: f(c.B)}
	if c.A.Valid {
		out.A = Alpha{Value: f(c.A.Value), Valid: true}
	}
	return out
}

// Every float64 produced by the scalar operations lands here; NaN can only
// arise from a NaN scalar and maps to 0.
func clampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 0xFF:
		return 0xFF
	}
	return uint8(v)
}
