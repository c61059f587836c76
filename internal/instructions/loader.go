package instructions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"taskrouter/internal/files"
	"taskrouter/internal/logging"

	"gopkg.in/yaml.v3"
)

// instructionFile is the on-disk shape of a YAML instruction file. The
// "instruction" key is the well-known entry point; a YAML file without it is
// skipped with a warning.
type instructionFile struct {
	Instruction string `yaml:"instruction"`
}

// Candidate is a discovered instruction file. The stem is the domain ID.
type Candidate struct {
	Stem string
	Path string
}

// DiscoverCandidates scans dir for instruction files (markdown or YAML),
// directly in the directory only. Underscore-prefixed files and README.md
// are excluded. Sorted by stem for a reproducible registration order.
func DiscoverCandidates(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("instructions: failed to read instructions directory %s: %w", dir, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !files.IsYAML(name) && !files.IsMarkdown(name) {
			continue
		}
		if strings.HasPrefix(name, "_") {
			continue
		}
		if strings.EqualFold(name, "README.md") {
			continue
		}
		candidates = append(candidates, Candidate{
			Stem: files.Stem(name),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Stem != candidates[j].Stem {
			return candidates[i].Stem < candidates[j].Stem
		}
		return candidates[i].Path < candidates[j].Path
	})
	return candidates, nil
}

// LoadDirectory performs one discovery pass over dir and installs every
// loadable instruction into the store. Per-file failures are logged and
// skipped; the pass continues. Returns the ordered list of domain IDs loaded.
func LoadDirectory(store *Store, dir string) ([]string, error) {
	timer := logging.StartTimer(logging.CategoryInstructions, "LoadDirectory")
	defer timer.Stop()

	log := logging.Get(logging.CategoryInstructions)
	log.Info("Loading instructions from %s", dir)

	candidates, err := DiscoverCandidates(dir)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		log.Warn("No instruction files found in %s", dir)
		return nil, nil
	}

	var loaded []string
	failures := 0
	for _, cand := range candidates {
		text, err := loadFile(cand)
		if err != nil {
			log.Error("Failed to load instruction file %s: %v", cand.Path, err)
			failures++
			continue
		}
		if text == "" {
			log.Warn("Skipping %s: no instruction content", cand.Path)
			continue
		}
		store.Set(cand.Stem, text)
		log.Info("Loaded instruction for %q from %s", cand.Stem, filepath.Base(cand.Path))
		loaded = append(loaded, cand.Stem)
	}

	log.Info("Instruction pass complete: %d loaded, %d failed, %d candidates", len(loaded), failures, len(candidates))
	return loaded, nil
}

// loadFile reads one candidate and returns the instruction text. Markdown
// files contribute their whole body; YAML files must carry the well-known
// "instruction" key. Returns ("", nil) for a well-formed file with no
// instruction.
func loadFile(cand Candidate) (string, error) {
	data, err := os.ReadFile(cand.Path)
	if err != nil {
		return "", fmt.Errorf("read failed: %w", err)
	}

	if files.IsMarkdown(cand.Path) {
		return strings.TrimSpace(string(data)), nil
	}

	var f instructionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("parse failed: %w", err)
	}
	return strings.TrimSpace(f.Instruction), nil
}
