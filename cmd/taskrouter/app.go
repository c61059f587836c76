package main

import (
	"context"
	"fmt"
	"os"

	"taskrouter/internal/config"
	"taskrouter/internal/domain"
	"taskrouter/internal/domain/builtin"
	"taskrouter/internal/instructions"
	"taskrouter/internal/logging"
	"taskrouter/internal/startup"
)

// app wires the registry, instruction store, and startup state together for
// the CLI commands. Everything is constructed explicitly here and passed by
// reference; no package carries hidden global state.
type app struct {
	cfg      *config.Config
	registry *domain.Registry
	instr    *instructions.Store
	state    *startup.State
	loader   *domain.Loader
}

func newApp() (*app, error) {
	cfg, err := config.Load(workspace)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		registry: domain.NewRegistry(),
		instr:    instructions.NewStore(),
		state:    startup.NewState(),
		loader:   domain.NewLoader(),
	}, nil
}

// discover runs one full discovery pass: built-in providers, then the
// workspace domains directory, and in parallel the instruction sources. An
// absent workspace directory means builtins-only; an unreadable one fails
// the run.
func (a *app) discover(ctx context.Context) startup.Snapshot {
	timer := logging.StartTimer(logging.CategoryBoot, "discovery")
	defer timer.StopWithInfo()

	logging.Boot("Discovery pass starting (workspace: %s)", workspace)
	snap := a.state.Run(ctx,
		startup.Task{Name: "domains", Run: a.loadDomains},
		startup.Task{Name: "instructions", Run: a.loadInstructions},
	)
	logging.Get(logging.CategoryBoot).StructuredLog("info", "discovery complete", map[string]interface{}{
		"status":       string(snap.Status),
		"domains":      a.registry.Len(),
		"instructions": a.instr.Len(),
	})
	return snap
}

func (a *app) loadDomains(ctx context.Context) error {
	if _, err := a.loader.LoadProviders(a.registry, builtin.Providers()); err != nil {
		return err
	}
	dir := a.cfg.DomainsPath(workspace)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logging.Registry("Domains directory %s absent, built-ins only", dir)
		return nil
	}
	_, err := a.loader.LoadDirectory(a.registry, dir)
	return err
}

func (a *app) loadInstructions(ctx context.Context) error {
	instructions.Seed(a.instr)
	dir := a.cfg.InstructionsPath(workspace)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	_, err := instructions.LoadDirectory(a.instr, dir)
	return err
}

// requireReady runs discovery and fails the command when it did not finish
// cleanly.
func (a *app) requireReady(ctx context.Context) error {
	snap := a.discover(ctx)
	if snap.Status != startup.StatusReady {
		return fmt.Errorf("discovery failed: %s", snap.LastError)
	}
	return nil
}
