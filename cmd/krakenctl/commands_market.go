package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lemconn/krakenlink/model"
	"github.com/lemconn/krakenlink/option"
)

func (a *app) marketCommands() []*cobra.Command {
	timeCmd := &cobra.Command{
		Use:   "time",
		Short: "Show the exchange server time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ExchangeData().GetServerTime(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.Print(map[string]any{
				"unixtime": res.Data.Unix(),
				"rfc3339":  res.Data.Format(time.RFC3339),
				"skew":     time.Since(res.Data).Round(time.Millisecond).String(),
			})
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the exchange system status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ExchangeData().GetSystemStatus(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.PrintStatus(res.Data)
		},
	}

	assetsCmd := &cobra.Command{
		Use:   "assets [ASSET...]",
		Short: "List asset information",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ExchangeData().GetAssets(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	pairsCmd := &cobra.Command{
		Use:   "pairs [PAIR...]",
		Short: "List tradable asset pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ExchangeData().GetSymbols(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	tickerCmd := &cobra.Command{
		Use:   "ticker PAIR...",
		Short: "Show ticker information",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ExchangeData().GetTickerList(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}

	return []*cobra.Command{
		timeCmd,
		statusCmd,
		assetsCmd,
		pairsCmd,
		tickerCmd,
		a.depthCommand(),
		a.tradesCommand(),
		a.spreadCommand(),
		a.ohlcCommand(),
	}
}

func (a *app) depthCommand() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "depth PAIR",
		Short: "Show the order book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []option.ArgsOption
			if cmd.Flags().Changed("count") {
				opts = append(opts, option.WithLimit(count))
			}
			res, err := a.client.ExchangeData().GetOrderBook(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "maximum number of asks and bids (1-500)")
	return cmd
}

func (a *app) tradesCommand() *cobra.Command {
	var (
		since string
		count int
	)
	cmd := &cobra.Command{
		Use:   "trades PAIR",
		Short: "Show recent trades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sinceOption(since)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("count") {
				opts = append(opts, option.WithLimit(count))
			}
			res, err := a.client.ExchangeData().GetTradeHistory(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "only trades after this time (RFC3339, unix seconds or a duration)")
	cmd.Flags().IntVar(&count, "count", 0, "maximum number of trades (1-1000)")
	return cmd
}

func (a *app) spreadCommand() *cobra.Command {
	var since string
	cmd := &cobra.Command{
		Use:   "spread PAIR",
		Short: "Show recent spreads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sinceOption(since)
			if err != nil {
				return err
			}
			res, err := a.client.ExchangeData().GetRecentSpread(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "only spreads after this time (RFC3339, unix seconds or a duration)")
	return cmd
}

func (a *app) ohlcCommand() *cobra.Command {
	var (
		interval string
		since    string
	)
	cmd := &cobra.Command{
		Use:   "ohlc PAIR",
		Short: "Show OHLC candles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := model.ParseKlineInterval(interval)
			if err != nil {
				return err
			}
			opts, err := sinceOption(since)
			if err != nil {
				return err
			}
			res, err := a.client.ExchangeData().GetKlines(cmd.Context(), args[0], iv, opts...)
			if err != nil {
				return err
			}
			return a.printer.Print(res.Data)
		},
	}
	cmd.Flags().StringVar(&interval, "interval", string(model.KlineInterval1h), "candle interval (1m, 5m, 15m, 30m, 1h, 4h, 1d, 1w, 15d)")
	cmd.Flags().StringVar(&since, "since", "", "only candles after this time (RFC3339, unix seconds or a duration)")
	return cmd
}

func sinceOption(since string) ([]option.ArgsOption, error) {
	if since == "" {
		return nil, nil
	}
	t, err := parseTime(since, time.Now())
	if err != nil {
		return nil, err
	}
	return []option.ArgsOption{option.WithSince(t)}, nil
}
