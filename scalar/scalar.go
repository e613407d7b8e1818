// Package scalar defines the abstract scalar type shared by every AMG setup
// kernel and its magnitude function, generalized with Go generics the way
// the teacher's maths package generalizes arithmetic over real and complex
// element types.
package scalar

import (
	"math"
	"math/cmplx"
)

// Number is the constraint satisfied by every scalar type the setup kernels
// accept: the real floating-point types and their complex counterparts.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Magnitude returns the real-valued magnitude of v (the mynorm collaborator
// of the external interfaces). For real types this is the absolute value;
// for complex types it is the modulus.
func Magnitude[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	default:
		return 0
	}
}

// FromReal constructs a T from a real value, used where a kernel computes a
// real-valued intermediate (a magnitude, a candidate-set measure) and must
// store it back into a slice of the abstract scalar type.
func FromReal[T Number](v float64) T {
	switch any(T(0)).(type) {
	case complex64:
		return any(complex64(complex(v, 0))).(T)
	case complex128:
		return any(complex(v, 0)).(T)
	case float32:
		return any(float32(v)).(T)
	default:
		return any(v).(T)
	}
}

// NegInf is the convention used for the maximum-magnitude of an empty row:
// any real comparison x >= NegInf holds for every finite x, so a row with no
// off-diagonal entries never admits a false strong connection.
var NegInf = math.Inf(-1)

// IsNegative reports whether v's real part is negative, the sign test used
// to split DirectInterpolator's strong-connection sums and to classify
// StandardInterpolator's a_kj/a_kl agreement.
func IsNegative[T Number](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return x < 0
	case float64:
		return x < 0
	case complex64:
		return real(x) < 0
	case complex128:
		return real(x) < 0
	default:
		return false
	}
}

// Real returns v's real part as a float64, the raw (signed) value used to
// rank entries by strength rather than by magnitude alone — pyamg's
// sort_2nd comparator sorts on the signed value so that, for the common
// negative-dominant off-diagonal case, the most strongly negative entries
// sort first.
func Real[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	default:
		return 0
	}
}

// SameSign reports whether a and b have the same sign under IsNegative, and
// neither is exactly zero. Used by StandardInterpolator's inner-denominator
// same-sign filter.
func SameSign[T Number](a, b T) bool {
	if a == 0 || b == 0 {
		return false
	}
	return IsNegative(a) == IsNegative(b)
}
