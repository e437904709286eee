package generate

import "math"

func fade(t float32) float32 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// hash3U32 derives a stable pseudo-random value from a seed and an integer
// lattice coordinate.
func hash3U32(seed uint32, x, y int32) uint32 {
	v := seed ^ 0x9e3779b9
	v ^= uint32(x) * 0x85ebca6b
	v = xorshift32(v)
	v ^= uint32(y) * 0xc2b2ae35
	return xorshift32(v)
}

var gradients = [8][2]float32{
	{1.0, 0.0},
	{-1.0, 0.0},
	{0.0, 1.0},
	{0.0, -1.0},
	{0.70710677, 0.70710677},
	{-0.70710677, 0.70710677},
	{0.70710677, -0.70710677},
	{-0.70710677, -0.70710677},
}

// gradDot picks one of eight unit gradient vectors for lattice point
// (ix,iy) and returns its dot product with the offset to (x,y).
func gradDot(seed uint32, ix, iy int32, x, y float32) float32 {
	h := hash3U32(seed, ix, iy) & 7
	g := gradients[h]
	dx := x - float32(ix)
	dy := y - float32(iy)
	return g[0]*dx + g[1]*dy
}

// perlin2 samples 2D gradient noise at (x,y) under seed.
func perlin2(seed uint32, x, y float32) float32 {
	x0 := int32(math.Floor(float64(x)))
	y0 := int32(math.Floor(float64(y)))
	x1 := x0 + 1
	y1 := y0 + 1

	sx := fade(x - float32(x0))
	sy := fade(y - float32(y0))

	n00 := gradDot(seed, x0, y0, x, y)
	n10 := gradDot(seed, x1, y0, x, y)
	n01 := gradDot(seed, x0, y1, x, y)
	n11 := gradDot(seed, x1, y1, x, y)

	ix0 := lerp(n00, n10, sx)
	ix1 := lerp(n01, n11, sx)
	return lerp(ix0, ix1, sy)
}

// fbm2 sums octaves of perlin2 noise (fractal Brownian motion), each octave
// at a seed offset so adjacent octaves don't correlate on the same lattice.
func fbm2(seed uint32, x, y float32, octaves uint32, lacunarity, gain float32) float32 {
	amp := float32(1.0)
	freq := float32(1.0)
	sum := float32(0.0)
	norm := float32(0.0)
	for i := uint32(0); i < octaves; i++ {
		s := seed + i*0x6d2b79f5
		sum += amp * perlin2(s, x*freq, y*freq)
		norm += amp
		amp *= gain
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
