package cli

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPosition(),
		GetCmdQueryUnclaimedFees(),
		GetCmdQueryVolume(),
		GetCmdQuerySimulateSwap(),
	)

	return ammQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query the pool state
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Query the pool identity, reserves and share supply",
		Long: `Query the pool's assets, current reserves, outstanding LP shares,
total value locked and spot price.

Example:
  $ cosmodexd query amm pool`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pool(context.Background(), &types.QueryPoolRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPosition returns the command to query a liquidity position
func GetCmdQueryPosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position [address]",
		Short: "Query a holder's liquidity position",
		Long: `Query a holder's LP share balance, the pro-rata amounts of both
reserves they could redeem, and their basis-point share of supply.

Example:
  $ cosmodexd query amm position cosmos1...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Position(context.Background(), &types.QueryPositionRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryUnclaimedFees returns the command to query unclaimed fees
func GetCmdQueryUnclaimedFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unclaimed-fees [address]",
		Short: "Query a holder's accrued but unclaimed swap fees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.UnclaimedFees(context.Background(), &types.QueryUnclaimedFeesRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryVolume returns the command to query volume counters
func GetCmdQueryVolume() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Query cumulative trade volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Volume(context.Background(), &types.QueryVolumeRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySimulateSwap returns the command to price a swap without
// executing it
func GetCmdQuerySimulateSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-swap [asset-in] [amount-in]",
		Short: "Price a swap against current reserves without executing it",
		Long: `Compute the output amount and fee a swap would produce at current
reserves. Use "native" for the chain's native asset.

Example:
  $ cosmodexd query amm simulate-swap utoken 1000000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[1])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SimulateSwap(context.Background(), &types.QuerySimulateSwapRequest{
				AssetIn:  args[0],
				AmountIn: amountIn,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
