package runtime

import "math/big"

// Integer is the language's only value kind: an arbitrary-precision integer.
// Operations never mutate Val in place; results always get a fresh big.Int.
type Integer struct {
	Val *big.Int
}

func NewInteger(v int64) Integer {
	return Integer{Val: big.NewInt(v)}
}

// IntegerFromBig copies v so later changes to it do not leak into the value.
func IntegerFromBig(v *big.Int) Integer {
	return Integer{Val: CloneBigInt(v)}
}

func Zero() Integer {
	return Integer{Val: new(big.Int)}
}

func CloneBigInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

func (v Integer) big() *big.Int {
	if v.Val == nil {
		return new(big.Int)
	}
	return v.Val
}

// Truthy reports whether v is non-zero.
func (v Integer) Truthy() bool {
	return v.big().Sign() != 0
}

func (v Integer) IsZero() bool {
	return !v.Truthy()
}

func (v Integer) Equal(other Integer) bool {
	return v.big().Cmp(other.big()) == 0
}

// String renders v in base 10.
func (v Integer) String() string {
	return v.big().String()
}

func (v Integer) Neg() Integer {
	return Integer{Val: new(big.Int).Neg(v.big())}
}

func (v Integer) Add(other Integer) Integer {
	return Integer{Val: new(big.Int).Add(v.big(), other.big())}
}

func (v Integer) Sub(other Integer) Integer {
	return Integer{Val: new(big.Int).Sub(v.big(), other.big())}
}

func (v Integer) Mul(other Integer) Integer {
	return Integer{Val: new(big.Int).Mul(v.big(), other.big())}
}

// Quo truncates toward zero. The caller rejects a zero divisor.
func (v Integer) Quo(other Integer) Integer {
	return Integer{Val: new(big.Int).Quo(v.big(), other.big())}
}

// Rem takes the sign of the dividend. The caller rejects a zero divisor.
func (v Integer) Rem(other Integer) Integer {
	return Integer{Val: new(big.Int).Rem(v.big(), other.big())}
}
