package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/alexshd/seriesmath"
)

type options struct {
	precision int
	output    string
}

func newRootCmd(cfg Config, logger *slog.Logger) *cobra.Command {
	opts := &options{precision: cfg.Precision, output: cfg.Output}

	root := &cobra.Command{
		Use:          "seriesmath",
		Short:        "Series approximations of elementary functions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.precision < 0 {
				return fmt.Errorf("--precision must be >= 0, got %d", opts.precision)
			}
			switch opts.output {
			case "text", "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.output)
			}
		},
	}

	root.PersistentFlags().IntVarP(&opts.precision, "precision", "p", opts.precision, "series terms or iterations")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", opts.output, "output format: text, json or yaml")

	root.AddCommand(newEvalCmd(opts, logger), newSweepCmd(opts, logger), newListCmd())
	return root
}

func newEvalCmd(opts *options, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <function> <args...>",
		Short: "Evaluate one function at one precision",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, values, err := lookup(args[0], args[1:])
			if err != nil {
				return err
			}

			p := seriesmath.Precision(opts.precision)
			value, err := fn.eval(values, p)
			if err != nil {
				return err
			}

			reference := fn.reference(values)
			report := evalReport{
				Function:  args[0],
				Args:      numbers(values),
				Precision: opts.precision,
				Value:     number(value),
				Reference: number(reference),
				AbsError:  number(math.Abs(value - reference)),
			}
			logger.Debug("evaluated",
				"function", report.Function,
				"precision", report.Precision,
				"abs_error", float64(report.AbsError))

			if opts.output == "text" {
				return writeEvalText(cmd.OutOrStdout(), report)
			}
			return write(cmd.OutOrStdout(), opts.output, report)
		},
	}
}

func newSweepCmd(opts *options, logger *slog.Logger) *cobra.Command {
	defaults := seriesmath.DefaultConfig()
	levels := defaults.Levels
	workers := defaults.Workers
	repeats := defaults.Repeats

	cmd := &cobra.Command{
		Use:   "sweep <function> <args...>",
		Short: "Measure error and time across precision levels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, values, err := lookup(args[0], args[1:])
			if err != nil {
				return err
			}

			// Reject out-of-domain arguments before starting workers.
			if _, err := fn.eval(values, seriesmath.Default); err != nil {
				return err
			}

			cfg := seriesmath.Config{
				Levels:  levels,
				Workers: workers,
				Repeats: repeats,
				Logger:  logger,
			}
			f := func(p seriesmath.Precision) float64 {
				v, _ := fn.eval(values, p)
				return v
			}

			reference := fn.reference(values)
			results, err := seriesmath.Run(cmd.Context(), f, reference, cfg)
			if err != nil {
				return err
			}

			report := newSweepReport(args[0], values, reference, results)
			if rate, err := seriesmath.FitConvergence(results); err != nil {
				logger.Warn("no convergence fit", "function", args[0], "err", err)
			} else {
				report.Rate = &rateReport{
					Slope:     number(rate.Slope),
					Intercept: number(rate.Intercept),
					RSquared:  number(rate.RSquared),
					Points:    rate.Points,
				}
			}

			stats := seriesmath.CalculateStatistics(results)
			logger.Info("sweep complete",
				"function", args[0],
				"levels", len(results),
				"mean", stats.Mean,
				"p95", stats.P95)

			if opts.output == "text" {
				return writeSweepText(cmd.OutOrStdout(), report)
			}
			return write(cmd.OutOrStdout(), opts.output, report)
		},
	}

	cmd.Flags().IntSliceVar(&levels, "levels", levels, "precision levels to evaluate")
	cmd.Flags().IntVar(&workers, "workers", workers, "concurrent workers")
	cmd.Flags().IntVar(&repeats, "repeats", repeats, "evaluations per level for timing")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range functionNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), registry[name].usage); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
