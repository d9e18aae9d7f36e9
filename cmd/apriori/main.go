// Command apriori mines frequent item sets and, optionally, association
// rules from a basket/item CSV file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/RiceaRaul/apriori"
	aprioriconfig "github.com/RiceaRaul/apriori/config"
	"github.com/RiceaRaul/apriori/datasource"
	"github.com/RiceaRaul/apriori/internal/telemetry"
	"github.com/RiceaRaul/apriori/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile, format, outFile, logLevel string

	mining := pflag.NewFlagSet("mining", pflag.ContinueOnError)
	v := aprioriconfig.RegisterFlags(mining)

	root := &cobra.Command{
		Use:   "apriori <csv-file>",
		Short: "Mine frequent item sets and association rules from a basket/item CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := aprioriconfig.Load(v, configFile)
			if err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			tel := telemetry.New(level, prometheus.DefaultRegisterer)

			source, _, err := datasource.LoadCSV(args[0])
			if err != nil {
				return err
			}
			tel.Log.Info().Int("transactions", source.Len()).Msg("dataset loaded")

			bar := progressbar.Default(-1, "mining")
			defer bar.Close()
			_ = bar.Add(1)

			out, err := apriori.Mine(context.Background(), cfg, source, tel)
			if err != nil {
				return err
			}
			_ = bar.Finish()

			return writeOutput(out, format, outFile)
		},
	}

	root.Flags().StringVar(&configFile, "config", "", "optional YAML config file")
	root.Flags().StringVar(&format, "format", "text", "output format: text or csv")
	root.Flags().StringVar(&outFile, "out", "", "output file prefix for csv format (defaults to ./apriori-)")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.Flags().AddFlagSet(mining)

	root.AddCommand(newBenchmarkProxyCmd())
	return root
}

func writeOutput(out *apriori.Output, format, outFile string) error {
	switch format {
	case "text":
		return report.WriteSummary(os.Stdout, out, 10)
	case "csv":
		prefix := outFile
		if prefix == "" {
			prefix = "apriori-"
		}
		if err := report.WriteItemsetsCSV(out.FrequentItemSets(), prefix+"itemsets.csv"); err != nil {
			return err
		}
		if out.Rules().Len() > 0 {
			if err := report.WriteRulesCSV(out.Rules(), prefix+"rules.csv"); err != nil {
				return err
			}
			fmt.Printf("wrote %sitemsets.csv and %srules.csv\n", prefix, prefix)
			return nil
		}
		fmt.Printf("wrote %sitemsets.csv\n", prefix)
		return nil
	default:
		return fmt.Errorf("unknown --format %q: want text or csv", format)
	}
}

// newBenchmarkProxyCmd points users at the dedicated benchmark binary; the
// sweep itself lives in cmd/benchmark because it has its own large flag
// surface and output shape.
func newBenchmarkProxyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benchmark",
		Short: "Run the parameter-sweep benchmark (see cmd/benchmark)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("run the dedicated benchmark binary instead: go run ./cmd/benchmark")
		},
	}
}
