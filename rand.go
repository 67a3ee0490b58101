package hexcolor

// A RandomSource supplies uniformly distributed random numbers for Random
// and RandomRGBA. Both math/rand and math/rand/v2 Rand values implement it;
// the library never seeds or owns a generator of its own.
type RandomSource interface {
	Uint32() uint32
}

// Random returns a color whose red, green, and blue channels are independent
// uniform random bytes drawn from src. The result has no alpha channel.
func Random(src RandomSource) Color {
	n := src.Uint32()
	return RGB(uint8(n>>16), uint8(n>>8), uint8(n))
}

// RandomRGBA returns a color whose four channels are independent uniform
// random bytes drawn from src. The result always has an alpha channel.
func RandomRGBA(src RandomSource) Color {
	n := src.Uint32()
	return RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n))
}
