package evidence

import (
	"strings"

	"github.com/firefly-engineering/skillify/internal/config"
)

// Candidate is one ranked documentation candidate.
type Candidate struct {
	// Path is the candidate's path relative to the repository root.
	Path string

	// Canonical is the destination name assigned by the matching rule,
	// before collision suffixing.
	Canonical string
}

// Evidence is the set of filesystem facts derived from a snapshot.
// It is a pure function of the snapshot; collecting twice yields equal values.
type Evidence struct {
	// Files holds every file path (slash-separated, relative) within the
	// walk bound.
	Files map[string]bool

	// Dirs holds every directory path within the walk bound, including
	// pruned directories themselves.
	Dirs map[string]bool

	// DocCandidates is the ranked documentation candidate list, ordered by
	// rule rank then variant order. Ranking never depends on filesystem
	// iteration order.
	DocCandidates []Candidate
}

// Collect derives Evidence from a snapshot using the configured document
// rule table.
func Collect(snap *RepositorySnapshot, opts config.Options) *Evidence {
	ev := &Evidence{
		Files: make(map[string]bool),
		Dirs:  make(map[string]bool),
	}

	// Case-insensitive path index for variant matching.
	lower := make(map[string]string, len(snap.Entries))
	for rel, entry := range snap.Entries {
		if entry.IsDir {
			ev.Dirs[rel] = true
			continue
		}
		ev.Files[rel] = true
		key := strings.ToLower(rel)
		// First-seen wins on case collisions; map iteration order would be
		// unstable, so prefer the lexicographically smaller path.
		if prev, ok := lower[key]; !ok || rel < prev {
			lower[key] = rel
		}
	}

	seen := make(map[string]bool)
	for _, rule := range opts.DocumentRules {
		for _, variant := range rule.Variants {
			rel, ok := lower[strings.ToLower(variant)]
			if !ok || seen[rel] {
				continue
			}
			seen[rel] = true
			ev.DocCandidates = append(ev.DocCandidates, Candidate{
				Path:      rel,
				Canonical: rule.Canonical,
			})
		}
	}

	return ev
}

// HasFile reports whether a file exists at the given relative path.
func (e *Evidence) HasFile(rel string) bool {
	return e.Files[rel]
}

// HasDir reports whether a directory exists at the given relative path.
func (e *Evidence) HasDir(rel string) bool {
	return e.Dirs[rel]
}

// HasRootSuffix reports whether any root-level file name ends with suffix.
// Used for marker families like *.csproj or *.tf.
func (e *Evidence) HasRootSuffix(suffix string) bool {
	for rel := range e.Files {
		if strings.Contains(rel, "/") {
			continue
		}
		if strings.HasSuffix(rel, suffix) {
			return true
		}
	}
	return false
}
