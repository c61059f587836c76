package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskrouter/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchFlag bool

// discoverCmd runs one discovery pass and optionally keeps watching.
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Run a domain and instruction discovery pass",
	Long: `Scans the workspace domains and instructions directories, registers every
loadable spec into the in-memory registry, and reports the outcome. A single
malformed file is logged and skipped; it never aborts the pass.

With --watch, stays running and re-discovers whenever the directories change.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().BoolVar(&watchFlag, "watch", false, "keep running and re-discover on file changes")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp()
	if err != nil {
		return err
	}

	snap := a.discover(ctx)
	fmt.Printf("Status: %s\n", snap.Status)
	fmt.Printf("Domains registered: %d\n", a.registry.Len())
	fmt.Printf("Instructions loaded: %d\n", a.instr.Len())
	if snap.LastError != "" {
		fmt.Printf("Last error: %s\n", snap.LastError)
	}

	if !watchFlag {
		if snap.LastError != "" {
			return fmt.Errorf("discovery finished with errors")
		}
		return nil
	}

	dirs := []string{
		a.cfg.DomainsPath(workspace),
		a.cfg.InstructionsPath(workspace),
	}
	w, err := watch.New(dirs, func(ctx context.Context) {
		snap := a.discover(ctx)
		logger.Info("Re-discovery complete",
			zap.String("status", string(snap.Status)),
			zap.Int("domains", a.registry.Len()),
			zap.Int("instructions", a.instr.Len()))
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Println("Watching for changes. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case <-ctx.Done():
	}
	return nil
}
