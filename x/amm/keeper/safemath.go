package keeper

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// SafeMath provides overflow-safe arithmetic over the signed 128-bit
// range the pool accounts in. Every result is bounds-checked against
// [-2^127, 2^127-1]; violations abort the calling operation.

var (
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// checkInt128 rejects values outside the signed 128-bit range
func checkInt128(v *big.Int) error {
	if v.Cmp(maxInt128) > 0 {
		return sdkerrors.Wrapf(ammtypes.ErrOverflow, "result %s exceeds maximum value", v.String())
	}
	if v.Cmp(minInt128) < 0 {
		return sdkerrors.Wrapf(ammtypes.ErrUnderflow, "result %s below minimum value", v.String())
	}
	return nil
}

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if err := checkInt128(result); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	if err := checkInt128(result); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if err := checkInt128(result); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values, truncating toward zero. Rejects
// zero divisors and the minimum-value / -1 edge whose result is not
// representable.
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrDivisionByZero, "division by zero")
	}

	if a.BigInt().Cmp(minInt128) == 0 && b.Equal(math.NewInt(-1)) {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrOverflow, "quotient exceeds maximum value")
	}

	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c with overflow protection. The
// intermediate product is bounds-checked before dividing, matching the
// checked-multiply-then-divide accounting used throughout the pool.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	product, err := SafeMul(a, b)
	if err != nil {
		return math.Int{}, err
	}
	return SafeQuo(product, c)
}

// IntegerSqrt returns the exact floor of the square root of x: the
// largest r with r*r <= x. Non-positive inputs yield zero.
func IntegerSqrt(x math.Int) math.Int {
	if x.IsNil() || !x.IsPositive() {
		return math.ZeroInt()
	}
	if x.Equal(math.OneInt()) {
		return math.OneInt()
	}

	// Binary search for the largest r with r <= x/r, comparing via
	// division so the probe never overflows.
	lo := math.OneInt()
	hi := x
	result := math.OneInt()
	two := math.NewInt(2)

	for lo.LTE(hi) {
		mid := lo.Add(hi).Quo(two)
		if mid.LTE(x.Quo(mid)) {
			result = mid
			lo = mid.Add(math.OneInt())
		} else {
			hi = mid.Sub(math.OneInt())
		}
	}

	return result
}
