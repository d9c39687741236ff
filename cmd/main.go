// Package main provides the CLI entrypoint for masthead.
// It wires subcommands (report, validate), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"masthead/internal/catalog"
	"masthead/internal/config"
	"masthead/internal/seed"
	"masthead/pkg/logger"
	"masthead/pkg/metrics"
	"masthead/pkg/storage/memory"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig reads configPath, falling back to environment variables and
// defaults when the file does not exist.
func loadConfig(configPath string) (*config.Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return config.LoadEnv()
	}

	return config.Load(configPath)
}

// loadCatalog creates an empty in-memory catalog and applies the seed
// document at path to it. Metrics are registered on reg when it is not nil.
func loadCatalog(ctx context.Context, path string, reg prometheus.Registerer) (catalog.Catalog, error) {
	var opts catalog.Options
	if reg != nil {
		collector, err := metrics.New(reg)
		if err != nil {
			return nil, err
		}
		opts.Metrics = collector
	}

	doc, err := seed.ParseFile(ctx, path)
	if err != nil {
		return nil, err
	}

	strg := memory.New()
	c := catalog.New(strg, opts)
	if _, err = seed.Apply(ctx, c, doc); err != nil {
		_ = strg.Close()

		return nil, err
	}

	return c, nil
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "masthead",
		Short:        "Authors, magazines and the articles joining them",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err = logger.SetupWithLevel(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		reportCommand(cfg),
		validateCommand(cfg),
	)

	err = rootCmd.ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of args so that the standard
// flag package does not stop at the subcommand name.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--config", "-config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--config=", "-config="} {
			if value, ok := strings.CutPrefix(arg, prefix); ok && value != "" {
				return []string{"-c", value}
			}
		}
	}

	return nil
}
