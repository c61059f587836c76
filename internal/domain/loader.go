package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"taskrouter/internal/logging"

	"gopkg.in/yaml.v3"
)

// domainFile is the on-disk shape of a domain YAML file. The top-level
// "domain" document is the well-known entry point: a file without it is a
// helper (shared anchors, scratch notes) and is skipped with a warning.
type domainFile struct {
	Domain *DomainSpec `yaml:"domain"`
}

// Loader runs discovery passes against a Registry. It carries the defaults
// overlay loaded from the reserved defaults file, if present.
type Loader struct {
	defaults *DomainSpec
}

// NewLoader returns a loader with no defaults overlay.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDirectory performs one discovery pass over dir: discover candidates,
// parse each, and register the resulting specs. A single malformed domain
// file never aborts the pass; it is logged and skipped. Returns the ordered
// list of domain IDs successfully registered.
//
// Re-running is safe: every domain is re-parsed and re-registered,
// overwriting prior entries.
func (l *Loader) LoadDirectory(reg *Registry, dir string) ([]string, error) {
	timer := logging.StartTimer(logging.CategoryRegistry, "LoadDirectory")
	defer timer.Stop()

	log := logging.Get(logging.CategoryRegistry)
	log.Info("Loading domain specs from %s", dir)

	if err := l.loadDefaults(dir); err != nil {
		log.Error("Failed to load defaults overlay: %v", err)
		// Defaults are an overlay, not a prerequisite. Continue without.
	}

	candidates, err := DiscoverCandidates(dir)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		log.Warn("No domain files found in %s", dir)
		return nil, nil
	}

	var registered []string
	failures := 0
	for _, cand := range candidates {
		spec, err := l.loadFile(cand)
		if err != nil {
			log.Error("Failed to load domain file %s: %v", cand.Path, err)
			failures++
			continue
		}
		if spec == nil {
			log.Warn("Skipping %s: no domain document", cand.Path)
			continue
		}
		if _, err := reg.Register(spec); err != nil {
			log.Error("Failed to register domain from %s: %v", cand.Path, err)
			failures++
			continue
		}
		log.Info("Registered domain %q from %s", spec.ID, filepath.Base(cand.Path))
		registered = append(registered, spec.ID)
	}

	log.Info("Discovery pass complete: %d registered, %d failed, %d candidates", len(registered), failures, len(candidates))
	return registered, nil
}

// LoadProviders registers every built-in provider from the static
// registration list, with the same per-item isolation as LoadDirectory.
// Providers are processed in ID order for deterministic registration.
func (l *Loader) LoadProviders(reg *Registry, providers []Provider) ([]string, error) {
	log := logging.Get(logging.CategoryRegistry)

	ordered := append([]Provider(nil), providers...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].DomainID() < ordered[j].DomainID() })

	var registered []string
	failures := 0
	for _, p := range ordered {
		spec, err := invokeProvider(p)
		if err != nil {
			log.Error("Provider %q failed: %v", p.DomainID(), err)
			failures++
			continue
		}
		if spec == nil {
			log.Warn("Provider %q returned no spec, skipping", p.DomainID())
			continue
		}
		l.applyDefaults(spec)
		if _, err := reg.Register(spec); err != nil {
			log.Error("Failed to register provider %q: %v", p.DomainID(), err)
			failures++
			continue
		}
		log.Info("Registered built-in domain %q", spec.ID)
		registered = append(registered, spec.ID)
	}

	log.Info("Provider pass complete: %d registered, %d failed", len(registered), failures)
	return registered, nil
}

// invokeProvider calls the provider factory, converting a panic into an
// error so one broken provider cannot take down the whole pass.
func invokeProvider(p Provider) (spec *DomainSpec, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("domain: provider %s panicked: %v", p.DomainID(), r)
		}
	}()
	return p.Spec()
}

// loadFile parses a single candidate. Returns (nil, nil) when the file is
// valid YAML but carries no domain document.
func (l *Loader) loadFile(cand Candidate) (*DomainSpec, error) {
	data, err := os.ReadFile(cand.Path)
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}

	var df domainFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	if df.Domain == nil {
		return nil, nil
	}

	spec := df.Domain
	if spec.ID == "" {
		// File stem is the domain ID by convention when the document
		// does not name one.
		spec.ID = cand.Stem
	}
	l.applyDefaults(spec)
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// loadDefaults reads the reserved defaults file if present. Absence is not
// an error.
func (l *Loader) loadDefaults(dir string) error {
	for _, name := range []string{DefaultsFile, "defaults.yml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		var df domainFile
		if err := yaml.Unmarshal(data, &df); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if df.Domain == nil {
			return fmt.Errorf("%s has no domain document", path)
		}
		l.defaults = df.Domain
		logging.Get(logging.CategoryRegistry).Info("Loaded defaults overlay from %s", path)
		return nil
	}
	l.defaults = nil
	return nil
}

// applyDefaults fills unset spec fields from the defaults overlay.
func (l *Loader) applyDefaults(spec *DomainSpec) {
	if l.defaults == nil || spec == nil {
		return
	}
	if spec.Model == "" {
		spec.Model = l.defaults.Model
	}
	if spec.MaxTokens == 0 {
		spec.MaxTokens = l.defaults.MaxTokens
	}
	if spec.Temperature == 0 {
		spec.Temperature = l.defaults.Temperature
	}
	if len(spec.Tools) == 0 && len(l.defaults.Tools) > 0 {
		spec.Tools = append([]string(nil), l.defaults.Tools...)
	}
	for k, v := range l.defaults.Metadata {
		if spec.Metadata == nil {
			spec.Metadata = make(map[string]string)
		}
		if _, ok := spec.Metadata[k]; !ok {
			spec.Metadata[k] = v
		}
	}
}
