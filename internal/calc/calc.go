// Package calc is a four-function calculator plus powers and square roots.
package calc

import (
	"errors"
	"math"
)

var (
	ErrDivideByZero = errors.New("calc: cannot divide by zero")
	ErrNegativeSqrt = errors.New("calc: cannot take the square root of a negative number")
)

func Add(a, b float64) float64      { return a + b }
func Subtract(a, b float64) float64 { return a - b }
func Multiply(a, b float64) float64 { return a * b }

func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

func Sqrt(n float64) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeSqrt
	}
	return math.Sqrt(n), nil
}
