// FILE: lixenwraith/devlog/cmd/devlog/demo.go
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/devlog"
)

var (
	demoWorkers  int
	demoEntries  int
	demoEncrypt  bool
	demoMaxBytes int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Log from concurrent workers",
	Long: `Starts a number of workers that log random messages at random severities,
mirrored to the day file. Long messages exercise console chunking.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVarP(&demoWorkers, "workers", "w", 4, "Concurrent workers")
	demoCmd.Flags().IntVarP(&demoEntries, "entries", "n", 25, "Entries per worker")
	demoCmd.Flags().BoolVar(&demoEncrypt, "encrypt", false, "Encrypt day file entries")
	demoCmd.Flags().IntVar(&demoMaxBytes, "max-bytes", 200, "Upper bound of random message size")
}

var demoSeverities = []devlog.Severity{
	devlog.SeverityVerbose,
	devlog.SeverityDebug,
	devlog.SeverityInfo,
	devlog.SeverityWarn,
	devlog.SeverityError,
}

func generateRandomMessage(r *rand.Rand, size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[r.Intn(len(chars))])
	}
	return sb.String()
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	if _, err := logger.Builder().Log2FileSwitch(true).EncryptSwitch(demoEncrypt).Build(); err != nil {
		_ = logger.Shutdown()
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Tag("Demo").Info("starting", demoWorkers, "workers")
	logger.JSON(fmt.Sprintf(`{"workers":%d,"entries":%d,"encrypt":%t}`, demoWorkers, demoEntries, demoEncrypt))

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < demoWorkers; w++ {
		g.Go(func() error {
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(w)))
			entry := logger.Tag(fmt.Sprintf("worker-%d", w))
			for i := 0; i < demoEntries; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				sev := demoSeverities[r.Intn(len(demoSeverities))]
				msg := generateRandomMessage(r, r.Intn(demoMaxBytes)+1)
				switch sev {
				case devlog.SeverityVerbose:
					entry.Verbose(i, msg)
				case devlog.SeverityDebug:
					entry.Debug(i, msg)
				case devlog.SeverityInfo:
					entry.Info(i, msg)
				case devlog.SeverityWarn:
					entry.Warn(i, msg)
				default:
					entry.WithError(errors.New("simulated failure")).Error(i, msg)
				}
			}
			return nil
		})
	}

	runErr := g.Wait()
	if errors.Is(runErr, context.Canceled) {
		logger.Tag("Demo").Warn("interrupted")
		runErr = nil
	}

	logger.Tag("Demo").Info("done in", time.Since(start).Round(time.Millisecond))
	if err := logger.Shutdown(5 * time.Second); err != nil {
		return errors.Join(runErr, err)
	}
	stats := logger.Stats()

	fmt.Fprintf(cmd.OutOrStdout(), "console=%d file=%d dropped=%d file=%s\n",
		stats.ConsoleEntries, stats.FileEntries, stats.DroppedEntries, stats.CurrentFile)
	return runErr
}
