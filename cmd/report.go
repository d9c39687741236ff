package main

import (
	"fmt"
	"io"
	"masthead/internal/config"
	"masthead/internal/report"
	"masthead/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func reportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Loads the seed document and prints a catalog report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if err := cfg.Validate(); err != nil {
				return err
			}

			var reg *prometheus.Registry
			if cfg.Report.Metrics {
				reg = prometheus.NewRegistry()
			}

			c, err := loadCatalog(ctx, cfg.Seed.Path, registerer(reg))
			if err != nil {
				logger.Error(ctx, "could not load catalog", zap.String("seed", cfg.Seed.Path), zap.Error(err))

				return err
			}

			r, err := report.Build(ctx, c)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch cfg.Report.Format {
			case config.FormatJSON:
				err = report.WriteJSON(out, r)
			default:
				err = report.WriteText(out, r)
			}
			if err != nil {
				return err
			}

			if reg != nil {
				return writeMetrics(out, reg)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Seed.Path, "seed", cfg.Seed.Path, "Seed document path")
	cmd.Flags().StringVar(&cfg.Report.Format, "format", cfg.Report.Format, "Report format (text or json)")
	cmd.Flags().BoolVar(&cfg.Report.Metrics, "metrics", cfg.Report.Metrics, "Append catalog counters to the report")

	return cmd
}

// registerer avoids handing a typed nil to loadCatalog.
func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return nil
	}

	return reg
}

func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("could not write metrics: %w", err)
		}
	}

	return nil
}
