package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ib-77/safecall/pkg/rop/core"
	"github.com/ib-77/safecall/pkg/rop/observe"
)

var runCmd = &cobra.Command{
	Use:   "run <scenarios.yaml>",
	Short: "Run every scenario in a file and print the outcomes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open scenarios: %w", err)
		}
		defer f.Close()

		scenarios, err := LoadScenarios(f)
		if err != nil {
			return err
		}

		collector := observe.NewCollector("safecall")
		reg := prometheus.NewRegistry()
		if err := collector.Register(reg); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}

		ctx := core.WithObserver(cmd.Context(), collector)
		ctx = core.WithWorkerOptions(ctx, viper.GetInt("workers"))

		rows := RunScenarios(ctx, scenarios, viper.GetDuration("timeout"))
		log.Infow("scenarios finished", "count", len(rows))

		out := cmd.OutOrStdout()
		switch format := viper.GetString("output"); format {
		case "json":
			err = RenderJSON(out, rows)
		case "table", "":
			err = RenderTable(out, rows)
		default:
			err = fmt.Errorf("unknown output format %q", format)
		}
		if err != nil {
			return err
		}

		if viper.GetBool("metrics") {
			return writeMetrics(out, reg)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("output", "table", "output format: table or json")
	runCmd.Flags().Duration("timeout", 0, "per scenario timeout (0 disables)")
	runCmd.Flags().Int("workers", 4, "scenarios run in parallel")
	runCmd.Flags().Bool("metrics", false, "print collected metrics after the outcomes")

	for _, name := range []string{"output", "timeout", "workers", "metrics"} {
		_ = viper.BindPFlag(name, runCmd.Flags().Lookup(name))
	}
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
