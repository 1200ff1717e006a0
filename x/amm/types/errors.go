package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrNotInitialized        = errors.Register(ModuleName, 2, "pool not initialized")
	ErrAlreadyInitialized    = errors.Register(ModuleName, 3, "pool already initialized")
	ErrInvalidAsset          = errors.Register(ModuleName, 4, "invalid asset reference")
	ErrInvalidAmount         = errors.Register(ModuleName, 5, "invalid amount")
	ErrNonProportional       = errors.Register(ModuleName, 6, "liquidity amounts must be proportional")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 7, "insufficient liquidity")
	ErrInsufficientShares    = errors.Register(ModuleName, 8, "insufficient LP shares")
	ErrInsufficientBalance   = errors.Register(ModuleName, 9, "insufficient balance")
	ErrInsufficientAllowance = errors.Register(ModuleName, 10, "insufficient allowance")
	ErrInsufficientReserves  = errors.Register(ModuleName, 11, "insufficient pool reserves")
	ErrInsufficientOutput    = errors.Register(ModuleName, 12, "insufficient output amount")
	ErrOverflow              = errors.Register(ModuleName, 13, "integer overflow")
	ErrUnderflow             = errors.Register(ModuleName, 14, "integer underflow")
	ErrDivisionByZero        = errors.Register(ModuleName, 15, "division by zero")
	ErrUnauthorized          = errors.Register(ModuleName, 16, "unauthorized")
	ErrInvalidPoolState      = errors.Register(ModuleName, 17, "invalid pool state")
	ErrInvalidAddress        = errors.Register(ModuleName, 18, "invalid address")
)
