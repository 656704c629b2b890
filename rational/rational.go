// seehuhn.de/go/exifxmp - EXIF and XMP metadata in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package rational implements exact fractions over fixed-width integer types.
//
// EXIF stores many measurements (exposure time, aperture, GPS positions) as a
// pair of 32-bit integers.  [Rational] keeps these pairs exact.  Values can be
// constructed reduced, using [New], or exactly as found on the wire, using
// [NewUnreduced].
//
// Arithmetic is carried out with arbitrary precision and the result is
// converted back to the element type.  Results which do not fit into the
// element type are truncated, in the same way as a Go integer conversion.
package rational

import (
	"errors"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Rational is a fraction Num/Den.
//
// A reduced Rational has gcd(|Num|, Den) == 1 and Den > 0, so that the sign
// is carried by the numerator.
type Rational[T constraints.Integer] struct {
	Num T
	Den T
}

// New returns the reduced fraction num/den.
func New[T constraints.Integer](num, den T) Rational[T] {
	r := Rational[T]{Num: num, Den: den}
	r.Reduce()
	return r
}

// NewUnreduced returns num/den without any normalisation.
func NewUnreduced[T constraints.Integer](num, den T) Rational[T] {
	return Rational[T]{Num: num, Den: den}
}

// Reduce brings r into reduced form.  The sign is moved to the numerator and
// both parts are divided by their greatest common divisor.  The return value
// indicates whether r was changed.
//
// The fraction 0/0 is left unchanged.  For n/0 with n != 0 the result is
// ±1/0.
func (r *Rational[T]) Reduce() bool {
	num, den := toBig(r.Num), toBig(r.Den)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Sign() != 0 && !isOne(g) {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	n, d := fromBig[T](num), fromBig[T](den)
	changed := n != r.Num || d != r.Den
	r.Num, r.Den = n, d
	return changed
}

// Reduced returns the reduced form of r.
func (r Rational[T]) Reduced() Rational[T] {
	r.Reduce()
	return r
}

// IsZero reports whether r represents the value zero.
// The fraction 0/0 is not zero.
func (r Rational[T]) IsZero() bool {
	return r.Num == 0 && r.Den != 0
}

// Float64 returns the value of r as a floating point number.
// Division by zero gives ±Inf or NaN.
func (r Rational[T]) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Add returns r+s.
func (r Rational[T]) Add(s Rational[T]) Rational[T] {
	rn, rd := toBig(r.Num), toBig(r.Den)
	sn, sd := toBig(s.Num), toBig(s.Den)
	num := new(big.Int).Mul(rn, sd)
	num.Add(num, new(big.Int).Mul(sn, rd))
	den := new(big.Int).Mul(rd, sd)
	return fromBigPair[T](num, den)
}

// Sub returns r-s.
func (r Rational[T]) Sub(s Rational[T]) Rational[T] {
	rn, rd := toBig(r.Num), toBig(r.Den)
	sn, sd := toBig(s.Num), toBig(s.Den)
	num := new(big.Int).Mul(rn, sd)
	num.Sub(num, new(big.Int).Mul(sn, rd))
	den := new(big.Int).Mul(rd, sd)
	return fromBigPair[T](num, den)
}

// Mul returns r*s.
func (r Rational[T]) Mul(s Rational[T]) Rational[T] {
	num := new(big.Int).Mul(toBig(r.Num), toBig(s.Num))
	den := new(big.Int).Mul(toBig(r.Den), toBig(s.Den))
	return fromBigPair[T](num, den)
}

// Div returns r/s, computed as r times the reciprocal of s.
//
// Dividing by a zero fraction is not an error: the zero denominator
// propagates into the result.  Dividing zero by zero gives 0/0.
func (r Rational[T]) Div(s Rational[T]) Rational[T] {
	return r.Mul(s.Reciprocal())
}

// Reciprocal returns Den/Num.
func (r Rational[T]) Reciprocal() Rational[T] {
	return Rational[T]{Num: r.Den, Den: r.Num}
}

// Neg returns -r.  For unsigned element types the result wraps around.
func (r Rational[T]) Neg() Rational[T] {
	return Rational[T]{Num: -r.Num, Den: r.Den}
}

// Cmp compares r and s and returns -1, 0 or +1.
// Fractions with a zero denominator compare by their numerators' signs.
func (r Rational[T]) Cmp(s Rational[T]) int {
	rn, rd := normSign(toBig(r.Num), toBig(r.Den))
	sn, sd := normSign(toBig(s.Num), toBig(s.Den))
	left := new(big.Int).Mul(rn, sd)
	right := new(big.Int).Mul(sn, rd)
	return left.Cmp(right)
}

// Equal reports whether r and s represent the same value.
func (r Rational[T]) Equal(s Rational[T]) bool {
	return r.Cmp(s) == 0
}

// String returns the fraction in the form "num/den".
func (r Rational[T]) String() string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(r.Num), 10) + "/" + strconv.FormatInt(int64(r.Den), 10)
	}
	return strconv.FormatUint(uint64(r.Num), 10) + "/" + strconv.FormatUint(uint64(r.Den), 10)
}

// Approximate returns a fraction p/q with |p/q - v| <= eps, found by
// continued fraction expansion.  Numerator and denominator are kept within
// the range of T.  If no such fraction exists within range, the closest
// convergent found before the range is exceeded is returned.
//
// Negative values give 0/1 for unsigned T.  NaN gives 0/1.
func Approximate[T constraints.Integer](v float64, eps float64) Rational[T] {
	if math.IsNaN(v) {
		return Rational[T]{Num: 0, Den: 1}
	}
	neg := v < 0
	if neg && !isSigned[T]() {
		return Rational[T]{Num: 0, Den: 1}
	}
	x := math.Abs(v)
	limit := maxValue[T]()
	if x >= float64(limit) {
		r := Rational[T]{Num: T(limit), Den: 1}
		if neg {
			r.Num = -r.Num
		}
		return r
	}

	// h/k are the convergents; h1/k1 the previous one.
	var h, k uint64 = 1, 0
	var h1, k1 uint64 = 0, 1
	bestH, bestK := uint64(0), uint64(1)
	y := x
	for iter := uint64(0); iter <= limit; iter++ {
		a := math.Floor(y)
		if a > float64(limit) {
			break
		}
		ai := uint64(a)
		hn, okH := mulAdd(ai, h, h1, limit)
		kn, okK := mulAdd(ai, k, k1, limit)
		if !okH || !okK {
			break
		}
		h, h1 = hn, h
		k, k1 = kn, k
		bestH, bestK = h, k
		if math.Abs(float64(h)/float64(k)-x) <= eps {
			break
		}
		frac := y - a
		if frac == 0 {
			break
		}
		y = 1 / frac
	}

	r := Rational[T]{Num: T(bestH), Den: T(bestK)}
	if neg {
		r.Num = -r.Num
	}
	return r
}

// Parse parses a string of the form "num/den".  A plain integer is read as
// num/1.  The result is not reduced.
func Parse[T constraints.Integer](s string) (Rational[T], error) {
	numStr, denStr, hasSlash := strings.Cut(strings.TrimSpace(s), "/")
	num, err := parseInt[T](strings.TrimSpace(numStr))
	if err != nil {
		return Rational[T]{}, err
	}
	if !hasSlash {
		return Rational[T]{Num: num, Den: 1}, nil
	}
	den, err := parseInt[T](strings.TrimSpace(denStr))
	if err != nil {
		return Rational[T]{}, err
	}
	return Rational[T]{Num: num, Den: den}, nil
}

// ParseDecimal converts a decimal string like "15.375" into the exact
// reduced fraction 123/8.
func ParseDecimal[T constraints.Integer](s string) (Rational[T], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational[T]{}, ErrSyntax
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok || strings.ContainsAny(s, "/eE") {
		return Rational[T]{}, ErrSyntax
	}
	num, den := r.Num(), r.Denom()
	if !fits[T](num) || !fits[T](den) {
		return Rational[T]{}, ErrRange
	}
	return Rational[T]{Num: fromBig[T](num), Den: fromBig[T](den)}, nil
}

func parseInt[T constraints.Integer](s string) (T, error) {
	size := bitSize[T]()
	if isSigned[T]() {
		v, err := strconv.ParseInt(s, 10, size)
		if err != nil {
			return 0, ErrSyntax
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, size)
	if err != nil {
		return 0, ErrSyntax
	}
	return T(v), nil
}

func fromBigPair[T constraints.Integer](num, den *big.Int) Rational[T] {
	num, den = normSign(num, den)
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Sign() != 0 && !isOne(g) {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rational[T]{Num: fromBig[T](num), Den: fromBig[T](den)}
}

func normSign(num, den *big.Int) (*big.Int, *big.Int) {
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	return num, den
}

func isOne(x *big.Int) bool {
	return x.IsInt64() && x.Int64() == 1
}

func toBig[T constraints.Integer](x T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

func fromBig[T constraints.Integer](x *big.Int) T {
	if isSigned[T]() {
		return T(x.Int64())
	}
	return T(x.Uint64())
}

func fits[T constraints.Integer](x *big.Int) bool {
	if x.Sign() < 0 {
		return isSigned[T]() && x.IsInt64() && -x.Int64()-1 <= int64(maxValue[T]())
	}
	return x.IsUint64() && x.Uint64() <= maxValue[T]()
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// maxValue returns the largest value representable by T.
func maxValue[T constraints.Integer]() uint64 {
	var zero T
	if !isSigned[T]() {
		return uint64(^zero)
	}
	m := T(0x7f)
	for {
		next := m<<8 | T(0x7f)<<1 | 1
		if next < m {
			break
		}
		m = next
	}
	return uint64(m)
}

func bitSize[T constraints.Integer]() int {
	n := bits.Len64(maxValue[T]())
	if isSigned[T]() {
		n++
	}
	return n
}

// mulAdd returns a*b+c and whether the result is <= limit.
func mulAdd(a, b, c, limit uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(lo, c, 0)
	if carry != 0 || sum > limit {
		return 0, false
	}
	return sum, true
}

var (
	// ErrSyntax indicates a string which is not a valid fraction.
	ErrSyntax = errors.New("rational: invalid syntax")

	// ErrRange indicates a value which does not fit into the element type.
	ErrRange = errors.New("rational: value out of range")
)
