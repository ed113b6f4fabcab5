package classify

import (
	"github.com/firefly-engineering/skillify/internal/evidence"
	"github.com/firefly-engineering/skillify/internal/logging"
)

// ProjectType is the primary classification of a repository.
type ProjectType string

const (
	TypeUnknown   ProjectType = "unknown"
	TypePython    ProjectType = "python"
	TypeNode      ProjectType = "node"
	TypeRust      ProjectType = "rust"
	TypeGo        ProjectType = "go"
	TypeRuby      ProjectType = "ruby"
	TypeJava      ProjectType = "java"
	TypeDotnet    ProjectType = "dotnet"
	TypeTerraform ProjectType = "terraform"
)

// Metadata holds project identity extracted from manifests.
type Metadata struct {
	Name        string
	Description string
	Version     string
}

// ProjectProfile is the classifier's conclusion about a repository.
// Type is always assigned exactly one value; TypeUnknown when no rule
// matches, never empty.
type ProjectProfile struct {
	Type           ProjectType
	Containerized  bool
	Language       string
	PackageManager string
	EntryPoints    []string
	HasCI          bool
	Metadata       Metadata
}

// rule is one entry in the ordered detection table.
type rule struct {
	projectType ProjectType
	markers     []string // exact root file names
	suffixes    []string // root file name suffixes (*.csproj families)
}

// rules is the fixed precedence table, evaluated top to bottom; the first
// matching rule wins. Language/runtime manifests come before generic build
// descriptors. This is an explicit ordered sequence on purpose: map
// iteration order must never decide a classification.
var rules = []rule{
	{TypePython, []string{"pyproject.toml", "setup.py", "requirements.txt", "Pipfile"}, nil},
	{TypeNode, []string{"package.json", "package-lock.json", "yarn.lock", "pnpm-lock.yaml"}, nil},
	{TypeRust, []string{"Cargo.toml", "Cargo.lock"}, nil},
	{TypeGo, []string{"go.mod", "go.sum"}, nil},
	{TypeRuby, []string{"Gemfile", "Gemfile.lock"}, []string{".gemspec"}},
	{TypeJava, []string{"pom.xml", "build.gradle", "build.gradle.kts"}, nil},
	{TypeDotnet, nil, []string{".csproj", ".sln", ".fsproj"}},
	{TypeTerraform, nil, []string{".tf"}},
}

// containerMarkers are secondary, non-exclusive: a repository can be both
// python and containerized.
var containerMarkers = []string{"Dockerfile", "Containerfile", "docker-compose.yml", "docker-compose.yaml"}

// entryPointTable maps each type to its conventional entry point filenames
// in fixed priority order. The first one present wins; none present is not
// an error.
var entryPointTable = map[ProjectType][]string{
	TypePython: {"main.py", "app.py", "cli.py", "src/main.py"},
	TypeNode:   {"index.js", "src/index.js", "index.ts", "src/index.ts"},
	TypeRust:   {"src/main.rs"},
	TypeGo:     {"main.go"},
	TypeRuby:   {"main.rb", "app.rb"},
}

// languageTable maps types to their language attribute.
var languageTable = map[ProjectType]string{
	TypePython:    "python",
	TypeNode:      "javascript",
	TypeRust:      "rust",
	TypeGo:        "go",
	TypeRuby:      "ruby",
	TypeJava:      "java",
	TypeDotnet:    "csharp",
	TypeTerraform: "hcl",
}

// Classify maps Evidence to a ProjectProfile.
// It is a pure, deterministic function of the evidence and never fails;
// the worst case is the unknown profile.
func Classify(ev *evidence.Evidence) ProjectProfile {
	profile := ProjectProfile{Type: TypeUnknown}

	for _, r := range rules {
		if matches(ev, r) {
			profile.Type = r.projectType
			break
		}
	}

	for _, marker := range containerMarkers {
		if ev.HasFile(marker) {
			profile.Containerized = true
			break
		}
	}

	profile.Language = languageTable[profile.Type]
	profile.PackageManager = detectPackageManager(ev, profile.Type)

	for _, name := range entryPointTable[profile.Type] {
		if ev.HasFile(name) {
			profile.EntryPoints = append(profile.EntryPoints, name)
			break
		}
	}

	profile.HasCI = ev.HasDir(".github/workflows") ||
		ev.HasFile(".gitlab-ci.yml") ||
		ev.HasDir(".circleci")

	logging.Debug("classified repository",
		"type", profile.Type,
		"containerized", profile.Containerized,
		"packageManager", profile.PackageManager,
	)

	return profile
}

func matches(ev *evidence.Evidence, r rule) bool {
	for _, m := range r.markers {
		if ev.HasFile(m) {
			return true
		}
	}
	for _, s := range r.suffixes {
		if ev.HasRootSuffix(s) {
			return true
		}
	}
	return false
}

func detectPackageManager(ev *evidence.Evidence, t ProjectType) string {
	switch t {
	case TypePython:
		// Refined to poetry/hatch later from pyproject contents.
		return "pip"
	case TypeNode:
		if ev.HasFile("pnpm-lock.yaml") {
			return "pnpm"
		}
		if ev.HasFile("yarn.lock") {
			return "yarn"
		}
		if ev.HasFile("bun.lockb") {
			return "bun"
		}
		return "npm"
	case TypeRust:
		return "cargo"
	case TypeGo:
		return "go"
	case TypeRuby:
		return "bundler"
	case TypeJava:
		if ev.HasFile("pom.xml") {
			return "maven"
		}
		return "gradle"
	case TypeDotnet:
		return "dotnet"
	case TypeTerraform:
		return "terraform"
	}
	return ""
}
