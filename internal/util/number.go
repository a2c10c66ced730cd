package util

import "math"

// Unsigned is the set of integer types usable as a color channel.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Unsigned]() T {
	return ^T(0)
}

// Max3 returns the largest of a, b and c. A NaN operand is ignored as long as
// one of the others is a number.
func Max3(a, b, c float64) float64 {
	return maxNum(a, maxNum(b, c))
}

// Min3 returns the smallest of a, b and c. A NaN operand is ignored as long as
// one of the others is a number.
func Min3(a, b, c float64) float64 {
	return minNum(a, minNum(b, c))
}

func maxNum(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}

func minNum(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

// ToChannel maps a fraction to a channel value of type T.
//
//   - f >= 1 maps to the maximum of T
//   - f <= 0 and NaN map to 0
//   - everything else is round(f * max)
func ToChannel[T Unsigned](f float64) T {
	max := MaxOf[T]()
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 1:
		return max
	case f <= 0:
		return 0
	}
	return T(math.Round(f * float64(max)))
}

// Fraction maps a channel value of type T into [0, 1].
func Fraction[T Unsigned](v T) float64 {
	return float64(v) / float64(MaxOf[T]())
}

// ApproxEqual reports whether a and b differ by less than epsilon.
//
// Non-finite values ignore epsilon: NaN equals NaN, an infinity equals only an
// infinity of the same sign, and a finite value never equals a non-finite one.
func ApproxEqual(a, b, epsilon float64) bool {
	aFinite := !math.IsNaN(a) && !math.IsInf(a, 0)
	bFinite := !math.IsNaN(b) && !math.IsInf(b, 0)

	switch {
	case aFinite != bFinite:
		return false
	case !aFinite:
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}
		return math.Signbit(a) == math.Signbit(b)
	}
	return math.Abs(a-b) < epsilon
}

// ClampRange forces x into [min, max].
func ClampRange(x, min, max float64) float64 {
	if x <= min {
		return min
	}
	if x >= max {
		return max
	}
	return x
}
