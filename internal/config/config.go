package config

import (
	"fmt"
	"regexp"
)

// skillNameRegex validates skill names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
// Maximum length is 63 characters.
var skillNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateSkillName checks if a skill name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators or special characters
func ValidateSkillName(name string) error {
	if name == "" {
		return fmt.Errorf("skill name cannot be empty")
	}

	if !skillNameRegex.MatchString(name) {
		return fmt.Errorf("invalid skill name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// Fixed names in the generated bundle layout.
const (
	SkillFileName = "SKILL.md"
	ReferencesDir = "references"
	ScriptsDir    = "scripts"
	VendorDir     = "vendor"
	InitScript    = "init.sh"
)

// Analysis bounds. These are deliberate, documented constants rather than
// silent hard-coding; callers override them through Options.
const (
	// DefaultMaxDocumentBytes bounds how much of a documentation file is
	// extracted into references/. Content beyond the bound is truncated
	// with TruncationMarker appended.
	DefaultMaxDocumentBytes = 64 * 1024

	// DefaultMaxWalkDepth bounds the snapshot walk below the repository
	// root. Marker files are only significant at the root; deeper levels
	// exist to locate documentation candidates.
	DefaultMaxWalkDepth = 2

	// TruncationMarker is appended whenever extracted documentation is cut
	// at the byte bound. Truncation is never silent.
	TruncationMarker = "\n\n[truncated]\n"
)

// DocumentRule maps filename variants to one canonical reference name.
// Variants are matched case-insensitively against the path relative to the
// repository root.
type DocumentRule struct {
	Canonical string
	Variants  []string
}

// DefaultDocumentRules returns the recognized documentation families in
// ranked order. The order is the extraction order; the first rule is the
// highest ranked.
func DefaultDocumentRules() []DocumentRule {
	return []DocumentRule{
		{
			Canonical: "README.md",
			Variants:  []string{"README.md", "README.rst", "README.txt", "README", "docs/README.md"},
		},
		{
			Canonical: "API.md",
			Variants:  []string{"API.md", "API.rst", "API.txt", "docs/API.md", "docs/index.md"},
		},
		{
			Canonical: "ARCHITECTURE.md",
			Variants:  []string{"ARCHITECTURE.md", "DESIGN.md", "docs/ARCHITECTURE.md"},
		},
		{
			Canonical: "CONTRIBUTING.md",
			Variants:  []string{"CONTRIBUTING.md", "CONTRIBUTING.rst"},
		},
		{
			Canonical: "CHANGELOG.md",
			Variants:  []string{"CHANGELOG.md", "CHANGELOG.rst", "CHANGELOG"},
		},
	}
}

// DefaultPruneDirs returns directory names excluded from the snapshot walk
// and from vendored copies.
func DefaultPruneDirs() map[string]bool {
	return map[string]bool{
		".git":          true,
		".hg":           true,
		".jj":           true,
		".venv":         true,
		"venv":          true,
		"node_modules":  true,
		"__pycache__":   true,
		".pytest_cache": true,
		"target":        true,
		"dist":          true,
		"build":         true,
		".next":         true,
		".cache":        true,
		"coverage":      true,
	}
}

// Options carries the tunables for one generation run.
type Options struct {
	// Name overrides the skill name inferred from project metadata.
	Name string

	// OutputDir is the bundle destination. Empty means ./skills/<name>.
	OutputDir string

	// WithWrapper requests generation of scripts/ implementing the
	// wrapper contract.
	WithWrapper bool

	// Vendor requests a verbatim copy of the source tree under vendor/.
	Vendor bool

	// MaxDocumentBytes bounds extracted documentation size.
	MaxDocumentBytes int

	// MaxWalkDepth bounds the snapshot walk below the root.
	MaxWalkDepth int

	// DocumentRules is the ranked canonical-name table.
	DocumentRules []DocumentRule

	// PruneDirs are directory names skipped during walks and vendoring.
	PruneDirs map[string]bool
}

// DefaultOptions returns Options populated with the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxDocumentBytes: DefaultMaxDocumentBytes,
		MaxWalkDepth:     DefaultMaxWalkDepth,
		DocumentRules:    DefaultDocumentRules(),
		PruneDirs:        DefaultPruneDirs(),
	}
}
