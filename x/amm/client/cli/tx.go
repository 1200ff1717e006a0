package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// FlagMinAmountOut bounds a swap client-side: the trade is simulated
// first and not broadcast if the quoted output falls below the bound.
const FlagMinAmountOut = "min-amount-out"

func flagSetSwapBounds() *pflag.FlagSet {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.String(FlagMinAmountOut, "", "Refuse to broadcast if the simulated output is below this amount")
	return fs
}

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
		CmdClaimFees(),
	)

	return ammTxCmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [amount-a] [amount-b]",
		Short: "Add liquidity to the pool",
		Long: `Deposit both pool assets proportionally in exchange for LP shares.

The amounts must match the current reserve ratio once the pool holds
liquidity; the first deposit sets the price.

Example:
  $ cosmodexd tx amm add-liquidity 1000000 2000000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[0])
			}

			amountB, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[1])
			}

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), amountA, amountB)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [shares]",
		Short: "Redeem LP shares for pool assets",
		Long: `Burn LP shares and withdraw the pro-rata amounts of both reserves.

Example:
  $ cosmodexd tx amm remove-liquidity 500000 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			shares, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[0])
			}

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), shares)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping against the pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [asset-in] [amount-in]",
		Short: "Swap a fixed input amount for the other pool asset",
		Long: `Trade amount-in of asset-in for the other pool asset at the
constant-product price, net of the swap fee. Use "native" for the
chain's native asset.

Example:
  $ cosmodexd tx amm swap utoken 1000000 --from mykey
  $ cosmodexd tx amm swap native 250000 --min-amount-out 240000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[1])
			}

			if bound, _ := cmd.Flags().GetString(FlagMinAmountOut); bound != "" {
				minOut, ok := math.NewIntFromString(bound)
				if !ok {
					return fmt.Errorf("invalid %s: %s (must be integer)", FlagMinAmountOut, bound)
				}

				queryClient := types.NewQueryClient(clientCtx)
				quote, err := queryClient.SimulateSwap(cmd.Context(), &types.QuerySimulateSwapRequest{
					AssetIn:  args[0],
					AmountIn: amountIn,
				})
				if err != nil {
					return err
				}
				if quote.AmountOut.LT(minOut) {
					return fmt.Errorf("simulated output %s below %s bound %s",
						quote.AmountOut, FlagMinAmountOut, minOut)
				}
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), args[0], amountIn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().AddFlagSet(flagSetSwapBounds())
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimFees returns a CLI command handler for claiming accrued fees
func CmdClaimFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-fees",
		Short: "Claim your accrued share of swap fees",
		Long: `Pay out the swap fees accrued to your LP shares since your last claim.

Example:
  $ cosmodexd tx amm claim-fees --from mykey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgClaimFees(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
