package types

// Event types emitted by the AMM module
const (
	EventTypeInitializePool  = "initialize_pool"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypeSwap            = "swap"
	EventTypeClaimFees       = "claim_fees"
	EventTypeShareTransfer   = "share_transfer"
	EventTypeShareApproval   = "share_approval"
	EventTypeShareBurn       = "share_burn"
)

// Event attribute keys
const (
	AttributeKeyAssetA       = "asset_a"
	AttributeKeyAssetB       = "asset_b"
	AttributeKeyAssetIn      = "asset_in"
	AttributeKeyAssetOut     = "asset_out"
	AttributeKeyAmountA      = "amount_a"
	AttributeKeyAmountB      = "amount_b"
	AttributeKeyAmountIn     = "amount_in"
	AttributeKeyAmountOut    = "amount_out"
	AttributeKeyShares       = "shares"
	AttributeKeyFeeAmount    = "fee_amount"
	AttributeKeyFeesClaimed  = "fees_claimed"
	AttributeKeyProvider     = "provider"
	AttributeKeyTrader       = "trader"
	AttributeKeyClaimer      = "claimer"
	AttributeKeyOwner        = "owner"
	AttributeKeySpender      = "spender"
	AttributeKeyRecipient    = "recipient"
	AttributeKeyReserveA     = "reserve_a"
	AttributeKeyReserveB     = "reserve_b"
	AttributeKeyTotalSupply  = "total_supply"
	AttributeValueCategory   = ModuleName
)
