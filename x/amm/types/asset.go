package types

// Protocol constants for the constant-product pool.
const (
	// FeeBps is the swap fee in basis points (0.30%).
	FeeBps = 30

	// BpsDenominator is the basis-point scale used for fees and share math.
	BpsDenominator = 10000

	// MinimumLiquidity is the floor on minted LP shares, preventing
	// degenerate pools whose share value cannot be represented.
	MinimumLiquidity = 1000

	// LPDecimals is the fixed decimal precision of LP share tokens.
	LPDecimals = 18

	// ProportionalityTolerancePPM is the allowed cross-product deviation,
	// in parts per million, when adding liquidity to a non-empty pool.
	ProportionalityTolerancePPM = 10
)

// The chain's native asset is accepted under two equivalent spellings:
// the literal alias and its canonical denom.
const (
	NativeAssetAlias = "native"
	NativeAssetDenom = "ucdx"
)

// IsNativeAsset reports whether an asset identifier names the chain's
// native asset under either accepted spelling.
func IsNativeAsset(id string) bool {
	return id == NativeAssetAlias || id == NativeAssetDenom
}

// NativeIndex identifies which side of the pool, if any, holds the
// native asset. Resolved once at initialization.
type NativeIndex int8

const (
	NativeIndexNone   NativeIndex = -1
	NativeIndexAssetA NativeIndex = 0
	NativeIndexAssetB NativeIndex = 1
)

// AssetRef is a pooled-asset reference with the native flag resolved at
// construction, so the hot paths never re-compare identity strings.
type AssetRef struct {
	ID     string
	Native bool
}

// NewAssetRef resolves an asset identifier into a tagged reference.
func NewAssetRef(id string) AssetRef {
	return AssetRef{ID: id, Native: IsNativeAsset(id)}
}
