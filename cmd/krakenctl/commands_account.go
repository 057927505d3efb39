package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lemconn/krakenlink/model"
	"github.com/lemconn/krakenlink/option"
)

// privateOpts 私有接口的公共参数，配置了二次验证密码时附带
func (a *app) privateOpts(opts ...option.ArgsOption) []option.ArgsOption {
	if a.cfg != nil && a.cfg.Kraken.TwoFactor != "" {
		opts = append(opts, option.WithTwoFactor(a.cfg.Kraken.TwoFactor))
	}
	return opts
}

func (a *app) accountCommands() []*cobra.Command {
	wsTokenCmd := &cobra.Command{
		Use:   "ws-token",
		Short: "Request a websocket authentication token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.Account().GetWebsocketToken(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	positionsCmd := &cobra.Command{
		Use:   "positions [TXID...]",
		Short: "Show open margin positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Account().GetOpenPositions(cmd.Context(),
				a.privateOpts(option.WithTransactionIDs(args...))...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	ledgerCmd := &cobra.Command{
		Use:   "ledger ID...",
		Short: "Query ledger entries by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Account().GetLedgersEntry(cmd.Context(),
				a.privateOpts(option.WithLedgerIDs(args...))...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	volumeCmd := &cobra.Command{
		Use:   "volume [PAIR...]",
		Short: "Show 30 day trade volume and fees",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Account().GetTradeVolume(cmd.Context(),
				a.privateOpts(option.WithSymbols(args...))...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	depositMethodsCmd := &cobra.Command{
		Use:   "deposit-methods ASSET",
		Short: "List deposit methods for an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Account().GetDepositMethods(cmd.Context(), args[0], a.privateOpts()...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	withdrawInfoCmd := &cobra.Command{
		Use:   "withdraw-info ASSET KEY AMOUNT",
		Short: "Show fee and limit for a withdrawal",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[2], err)
			}
			res, err := a.client.Account().GetWithdrawInfo(cmd.Context(), args[0], args[1], amount, a.privateOpts()...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	return []*cobra.Command{
		a.balanceCommand(),
		a.tradeBalanceCommand(),
		a.ledgersCommand(),
		ledgerCmd,
		positionsCmd,
		volumeCmd,
		depositMethodsCmd,
		a.depositAddressesCommand(),
		a.depositStatusCommand(),
		withdrawInfoCmd,
		wsTokenCmd,
	}
}

func (a *app) balanceCommand() *cobra.Command {
	var extended bool
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show account balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if extended {
				res, err := a.client.Account().GetAvailableBalances(cmd.Context(), a.privateOpts()...)
				if err != nil {
					return err
				}
				return a.printer.Print(res.Data)
			}
			res, err := a.client.Account().GetBalances(cmd.Context(), a.privateOpts()...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
	cmd.Flags().BoolVar(&extended, "extended", false, "include amounts held by open orders")
	return cmd
}

func (a *app) tradeBalanceCommand() *cobra.Command {
	var asset string
	cmd := &cobra.Command{
		Use:   "trade-balance",
		Short: "Show margin trade balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []option.ArgsOption
			if asset != "" {
				opts = append(opts, option.WithBaseAsset(asset))
			}
			res, err := a.client.Account().GetTradeBalance(cmd.Context(), a.privateOpts(opts...)...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
	cmd.Flags().StringVar(&asset, "asset", "", "base asset used for the balance (default ZUSD)")
	return cmd
}

func (a *app) ledgersCommand() *cobra.Command {
	var (
		assets []string
		kinds  []string
		start  string
		end    string
		offset int
	)
	cmd := &cobra.Command{
		Use:   "ledgers",
		Short: "List ledger entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []option.ArgsOption{option.WithAssets(assets...)}
			if len(kinds) > 0 {
				ledgerTypes := make([]model.LedgerEntryType, 0, len(kinds))
				for _, k := range kinds {
					ledgerTypes = append(ledgerTypes, model.LedgerEntryType(k))
				}
				opts = append(opts, option.WithLedgerTypes(ledgerTypes...))
			}
			if start != "" {
				t, err := parseTime(start, time.Now())
				if err != nil {
					return err
				}
				opts = append(opts, option.WithStartTime(t))
			}
			if end != "" {
				t, err := parseTime(end, time.Now())
				if err != nil {
					return err
				}
				opts = append(opts, option.WithEndTime(t))
			}
			if cmd.Flags().Changed("offset") {
				opts = append(opts, option.WithOffset(offset))
			}

			res, err := a.client.Account().GetLedgerInfo(cmd.Context(), a.privateOpts(opts...)...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
	cmd.Flags().StringSliceVar(&assets, "asset", nil, "filter by asset, repeatable")
	cmd.Flags().StringSliceVar(&kinds, "type", nil, "filter by ledger type, repeatable")
	cmd.Flags().StringVar(&start, "start", "", "start time (RFC3339, unix seconds or a duration)")
	cmd.Flags().StringVar(&end, "end", "", "end time (RFC3339, unix seconds or a duration)")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset for pagination")
	return cmd
}

func (a *app) depositAddressesCommand() *cobra.Command {
	var generate bool
	cmd := &cobra.Command{
		Use:   "deposit-addresses ASSET METHOD",
		Short: "List deposit addresses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Account().GetDepositAddresses(cmd.Context(), args[0], args[1],
				a.privateOpts(option.WithGenerateNew(generate))...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
	cmd.Flags().BoolVar(&generate, "new", false, "generate a new address")
	return cmd
}

func (a *app) depositStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit-status ASSET METHOD",
		Short: "Show recent deposits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Account().GetDepositStatus(cmd.Context(), args[0], args[1], a.privateOpts()...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
}
