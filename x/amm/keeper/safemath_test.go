package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/keeper"
	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

func maxInt128() math.Int {
	v := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	return math.NewIntFromBigInt(v)
}

func minInt128() math.Int {
	v := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	return math.NewIntFromBigInt(v)
}

func TestSafeAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    math.Int
		want    math.Int
		wantErr bool
	}{
		{"simple", math.NewInt(2), math.NewInt(3), math.NewInt(5), false},
		{"negative operand", math.NewInt(2), math.NewInt(-3), math.NewInt(-1), false},
		{"at max boundary", maxInt128().Sub(math.OneInt()), math.OneInt(), maxInt128(), false},
		{"overflow past max", maxInt128(), math.OneInt(), math.Int{}, true},
		{"underflow past min", minInt128(), math.NewInt(-1), math.Int{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := keeper.SafeAdd(tc.a, tc.b)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}

func TestSafeSub(t *testing.T) {
	got, err := keeper.SafeSub(math.NewInt(5), math.NewInt(7))
	require.NoError(t, err)
	require.True(t, got.Equal(math.NewInt(-2)))

	_, err = keeper.SafeSub(minInt128(), math.OneInt())
	require.Error(t, err)
	require.True(t, types.ErrUnderflow.Is(err))
}

func TestSafeMul(t *testing.T) {
	got, err := keeper.SafeMul(math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	require.True(t, got.Equal(math.NewInt(1_000_000_000_000)))

	got, err = keeper.SafeMul(math.ZeroInt(), maxInt128())
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = keeper.SafeMul(maxInt128(), math.NewInt(2))
	require.Error(t, err)
	require.True(t, types.ErrOverflow.Is(err))
}

func TestSafeQuo(t *testing.T) {
	got, err := keeper.SafeQuo(math.NewInt(7), math.NewInt(2))
	require.NoError(t, err)
	require.True(t, got.Equal(math.NewInt(3)), "quotient truncates toward zero")

	got, err = keeper.SafeQuo(math.NewInt(-7), math.NewInt(2))
	require.NoError(t, err)
	require.True(t, got.Equal(math.NewInt(-3)))

	_, err = keeper.SafeQuo(math.NewInt(1), math.ZeroInt())
	require.Error(t, err)
	require.True(t, types.ErrDivisionByZero.Is(err))

	// min / -1 is the one quotient outside the representable range
	_, err = keeper.SafeQuo(minInt128(), math.NewInt(-1))
	require.Error(t, err)
	require.True(t, types.ErrOverflow.Is(err))
}

func TestSafeMulDiv(t *testing.T) {
	// (amount * 9970) / 10000, the swap fee shape
	got, err := keeper.SafeMulDiv(math.NewInt(10_000_000_000), math.NewInt(9970), math.NewInt(10000))
	require.NoError(t, err)
	require.True(t, got.Equal(math.NewInt(9_970_000_000)))

	_, err = keeper.SafeMulDiv(maxInt128(), math.NewInt(2), math.NewInt(2))
	require.Error(t, err, "intermediate product is bounds-checked before dividing")
}

func TestIntegerSqrt(t *testing.T) {
	tests := []struct {
		input int64
		want  int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{15, 3},
		{16, 4},
		{99, 9},
		{100, 10},
		{10_000, 100},
		{1_000_000_000_000, 1_000_000},
		{1_000_000_000_001, 1_000_000},
	}

	for _, tc := range tests {
		got := keeper.IntegerSqrt(math.NewInt(tc.input))
		require.True(t, got.Equal(math.NewInt(tc.want)), "sqrt(%d) = %s, want %d", tc.input, got, tc.want)
	}

	require.True(t, keeper.IntegerSqrt(math.NewInt(-4)).IsZero())
}

func TestIntegerSqrtLarge(t *testing.T) {
	// 10^20 is a perfect square of 10^10 and beyond the int64 range
	big100 := math.NewIntWithDecimal(1, 20)
	require.True(t, keeper.IntegerSqrt(big100).Equal(math.NewIntWithDecimal(1, 10)))

	// One below a perfect square floors down
	require.True(t, keeper.IntegerSqrt(big100.Sub(math.OneInt())).Equal(math.NewIntWithDecimal(1, 10).Sub(math.OneInt())))
}
