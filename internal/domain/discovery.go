package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"taskrouter/internal/files"
)

// DefaultsFile is the reserved per-directory defaults document. It is merged
// into every discovered spec and is never a discovery candidate itself.
const DefaultsFile = "defaults.yaml"

// Candidate is a discovered domain file eligible for loading. The stem (file
// name without extension) doubles as the fallback domain ID.
type Candidate struct {
	Stem string
	Path string
}

// DiscoverCandidates scans dir for domain YAML files, directly in the
// directory only (no recursion). Files whose name starts with "_" and the
// reserved defaults file are excluded. The result is sorted by stem so the
// registration order, and therefore last-write-wins resolution of duplicate
// IDs, is reproducible across runs.
//
// An unreadable directory is a fatal error for the whole pass; per-file
// problems are the loader's job.
func DiscoverCandidates(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("domain: failed to read domains directory %s: %w", dir, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !files.IsYAML(name) {
			continue
		}
		if strings.HasPrefix(name, "_") {
			continue
		}
		if name == DefaultsFile || name == "defaults.yml" {
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
