package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ozwaldorf/vanity-secp256k1/basemul"
	"github.com/ozwaldorf/vanity-secp256k1/secp"
	"github.com/ozwaldorf/vanity-secp256k1/vanity"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagOutDir      = "out-dir"
	flagThreads     = "threads"
	flagCount       = "count"
	flagParallelMul = "parallel-mul"
	flagLogLevel    = "log-level"

	envPrefix = "VANITY"

	progressInterval = time.Second
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "vanity <prefix>",
		Short:        "Search for secp256k1 keys with a base58 public key prefix",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), v, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringP(flagOutDir, "o", "out", "directory the matching keys are written to")
	flags.IntP(flagThreads, "t", 8, "number of search goroutines")
	flags.Int(flagCount, 0, "stop after this many matches (0 searches forever)")
	flags.Bool(flagParallelMul, false, "split each base point multiplication across CPUs")
	flags.String(flagLogLevel, "info", "log level (debug, info, warn, error)")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, v *viper.Viper, prefix string) error {
	logger, err := newLogger(v.GetString(flagLogLevel))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	outDir := v.GetString(flagOutDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", outDir)
	}

	start := time.Now()
	table := basemul.Default()
	logger.Info("built base point table", zap.Duration("elapsed", time.Since(start)))

	g := secp.New(table)
	g.Parallel = v.GetBool(flagParallelMul)

	searcher, err := vanity.New(g, vanity.Config{
		Prefix:  prefix,
		Workers: v.GetInt(flagThreads),
	}, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	results := make(chan vanity.Result)
	done := make(chan error, 1)
	go func() { done <- searcher.Run(ctx, results) }()

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	var (
		found    int
		limit    = v.GetInt(flagCount)
		last     uint64
		lastTime = time.Now()
	)
	for {
		select {
		case r := <-results:
			path, err := vanity.WriteKey(outDir, r)
			if err != nil {
				cancel()
				<-done
				return err
			}
			fmt.Fprintf(stderr, "\r\x1b[K")
			fmt.Fprintf(stdout, "Found %s\n", r.PublicKey)
			logger.Debug("wrote key", zap.String("path", path))

			found++
			if limit > 0 && found >= limit {
				cancel()
				return <-done
			}

		case now := <-ticker.C:
			attempts := searcher.Attempts()
			rate := float64(attempts-last) / now.Sub(lastTime).Seconds()
			last, lastTime = attempts, now
			fmt.Fprintf(stderr, "\r\x1b[K%.0f keys/second", rate)

		case err := <-done:
			fmt.Fprintln(stderr)
			return err
		}
	}
}
