package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store keys. The pool aggregate is persisted one stable key per field so
// that each record can be read and written independently.
var (
	// Pool identity, written once by InitializePool
	PoolInitializedKey = []byte{0x01}
	AssetAKey          = []byte{0x02}
	AssetBKey          = []byte{0x03}
	ReserveAKey        = []byte{0x04}
	ReserveBKey        = []byte{0x05}
	NativeIndexKey     = []byte{0x06}
	LPNameKey          = []byte{0x07}
	LPSymbolKey        = []byte{0x08}
	LPDecimalsKey      = []byte{0x09}

	// LP share ledger
	TotalSupplyKey     = []byte{0x10}
	BalanceKeyPrefix   = []byte{0x11}
	AllowanceKeyPrefix = []byte{0x12}

	// Fee accrual engine
	TotalFeesEarnedKey        = []byte{0x20}
	FeesPerShareKey           = []byte{0x21}
	FeeLastUpdateKey          = []byte{0x22}
	LastObservedFeesKeyPrefix = []byte{0x23}

	// Volume tracker
	VolumeAllTimeKey  = []byte{0x30}
	Volume24hKey      = []byte{0x31}
	Volume7dKey       = []byte{0x32}
	LastSwapLedgerKey = []byte{0x33}

	// Internal native-asset ledger
	NativeBalanceKey = []byte{0x40}

	// Module parameters
	ParamsKey = []byte{0x50}
)

// BalanceKey returns the store key for an LP share balance
func BalanceKey(owner sdk.AccAddress) []byte {
	return append(BalanceKeyPrefix, owner.Bytes()...)
}

// AllowanceKey returns the store key for an (owner, spender) allowance.
// The owner is length-prefixed so the two addresses cannot alias.
func AllowanceKey(owner, spender sdk.AccAddress) []byte {
	key := append(AllowanceKeyPrefix, address.MustLengthPrefix(owner.Bytes())...)
	return append(key, spender.Bytes()...)
}

// LastObservedFeesKey returns the store key for a holder's fees-per-share
// snapshot taken at their last claim.
func LastObservedFeesKey(owner sdk.AccAddress) []byte {
	return append(LastObservedFeesKeyPrefix, owner.Bytes()...)
}
