package bundle

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/skillify/internal/classify"
	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/docs"
	"github.com/firefly-engineering/skillify/internal/errors"
	"github.com/firefly-engineering/skillify/internal/evidence"
	"github.com/firefly-engineering/skillify/internal/logging"
)

// purposeBound caps the purpose paragraph lifted from the README.
const purposeBound = 500

// treeEntryBound caps the rendered directory tree.
const treeEntryBound = 50

// frontMatter is the YAML block at the top of SKILL.md. Field order is the
// emission order.
type frontMatter struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	Version        string `yaml:"version,omitempty"`
	ProjectType    string `yaml:"project_type"`
	Language       string `yaml:"language,omitempty"`
	PackageManager string `yaml:"package_manager,omitempty"`
	EntryPoint     string `yaml:"entry_point,omitempty"`
	Containerized  bool   `yaml:"containerized,omitempty"`
}

// usageTable maps each project type to its quick-start guidance. This is a
// fixed lookup; unknown types get the generic inspect-and-run instruction.
var usageTable = map[classify.ProjectType]string{
	classify.TypePython:    "Set up a virtualenv and install the project with `pip install -e .` (or the detected package manager), then invoke the entry point below.",
	classify.TypeNode:      "Install dependencies with the detected package manager, then run the package scripts below.",
	classify.TypeRust:      "Build with `cargo build` and run the produced binary; `cargo test` runs the test suite.",
	classify.TypeGo:        "Build with `go build ./...`; `go test ./...` runs the test suite.",
	classify.TypeRuby:      "Install gems with `bundle install`, then invoke the entry point below.",
	classify.TypeJava:      "Build with the detected build tool (`mvn package` or `gradle build`).",
	classify.TypeDotnet:    "Build with `dotnet build`; `dotnet test` runs the test suite.",
	classify.TypeTerraform: "Run `terraform init` once, then `terraform plan` to inspect changes.",
}

const genericUsage = "No build manifest was detected. Inspect the directory structure above and run the project manually."

// Compose deterministically assembles the in-memory bundle from the
// classifier's and extractor's outputs. It performs no I/O writes.
func Compose(profile classify.ProjectProfile, units []docs.DocumentationUnit, snap *evidence.RepositorySnapshot, opts config.Options) (*SkillBundle, error) {
	name := opts.Name
	if name == "" {
		name = SanitizeSkillName(profile.Metadata.Name)
	}
	if err := config.ValidateSkillName(name); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	b := &SkillBundle{
		Dirs:      []string{config.ReferencesDir},
		PruneDirs: opts.PruneDirs,
	}

	skillMD := renderSkillMD(name, profile, units, snap, opts)
	b.Files = append(b.Files, File{Path: config.SkillFileName, Content: []byte(skillMD), Mode: 0644})

	for _, unit := range units {
		b.Files = append(b.Files, File{
			Path:    config.ReferencesDir + "/" + unit.CanonicalName,
			Content: unit.Content,
			Mode:    0644,
		})
	}

	if opts.WithWrapper {
		b.Dirs = append(b.Dirs, config.ScriptsDir)
		scripts, err := generateScripts(name, profile, opts)
		if err != nil {
			// A requested feature is never silently downgraded.
			return nil, err
		}
		b.Files = append(b.Files, scripts...)
	}

	if opts.Vendor {
		b.VendorRoot = snap.Root
	}

	logging.Debug("bundle composed",
		"name", name,
		"files", len(b.Files),
		"wrapper", opts.WithWrapper,
		"vendor", opts.Vendor,
	)

	return b, nil
}

// SanitizeSkillName lowercases a project name and maps it onto the valid
// skill name alphabet. An unusable name degrades to "skill".
func SanitizeSkillName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")

	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		case r == ' ', r == '/', r == '.', r == '@':
			sb.WriteRune('-')
		}
	}

	out := strings.Trim(sb.String(), "-")
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	if len(out) > 63 {
		out = out[:63]
		out = strings.Trim(out, "-")
	}
	if out == "" || !(out[0] >= 'a' && out[0] <= 'z' || out[0] >= '0' && out[0] <= '9') {
		return "skill"
	}
	return out
}

type skillMDData struct {
	FrontMatter     string
	Title           string
	Purpose         string
	TypeLine        string
	Tree            string
	Usage           string
	EntryPoints     []string
	References      []string
	Wrapper         bool
	EntrypointName  string
	ContractVersion string
}

func renderSkillMD(name string, profile classify.ProjectProfile, units []docs.DocumentationUnit, snap *evidence.RepositorySnapshot, opts config.Options) string {
	description := profile.Metadata.Description
	if description == "" {
		description = "Work with the " + profile.Metadata.Name + " codebase."
	}
	description += " Use when working on " + name + ", navigating " + name + ", or building " + name + "."

	entryPoint := ""
	if len(profile.EntryPoints) > 0 {
		entryPoint = profile.EntryPoints[0]
	}

	fm := frontMatter{
		Name:           name,
		Description:    description,
		Version:        profile.Metadata.Version,
		ProjectType:    string(profile.Type),
		Language:       profile.Language,
		PackageManager: profile.PackageManager,
		EntryPoint:     entryPoint,
		Containerized:  profile.Containerized,
	}
	fmBytes, err := yaml.Marshal(fm)
	if err != nil {
		// Marshaling a plain struct cannot fail at runtime.
		panic("bundle: front-matter marshal: " + err.Error())
	}

	usage, ok := usageTable[profile.Type]
	if !ok {
		usage = genericUsage
	}

	typeLine := string(profile.Type)
	if profile.Containerized {
		typeLine += ", containerized"
	}
	if profile.HasCI {
		typeLine += " (CI configured)"
	}

	refs := make([]string, 0, len(units))
	for _, u := range units {
		refs = append(refs, u.CanonicalName)
	}

	data := skillMDData{
		FrontMatter:     string(fmBytes),
		Title:           profile.Metadata.Name,
		Purpose:         extractPurpose(units, profile),
		TypeLine:        typeLine,
		Tree:            treeString(snap, treeEntryBound),
		Usage:           usage,
		EntryPoints:     profile.EntryPoints,
		References:      refs,
		Wrapper:         opts.WithWrapper,
		EntrypointName:  entrypointName(profile),
		ContractVersion: contractVersionString,
	}
	return renderTemplate("skill.md", data)
}

// extractPurpose lifts the first meaningful paragraph out of the extracted
// README, bounded, falling back to a generic line.
func extractPurpose(units []docs.DocumentationUnit, profile classify.ProjectProfile) string {
	for _, u := range units {
		if !strings.HasPrefix(u.CanonicalName, "README") {
			continue
		}
		for _, p := range strings.Split(string(u.Content), "\n\n") {
			p = strings.TrimSpace(p)
			if len(p) <= 50 || strings.HasPrefix(p, "#") || strings.HasPrefix(p, "```") {
				continue
			}
			if len(p) > purposeBound {
				p = p[:purposeBound]
			}
			return strings.ReplaceAll(p, "\n", " ")
		}
		break
	}
	return "Codebase skill for " + profile.Metadata.Name + "."
}

// treeString renders the snapshot as an indented tree, directories first,
// names sorted, bounded to maxEntries lines.
func treeString(snap *evidence.RepositorySnapshot, maxEntries int) string {
	children := make(map[string][]string)
	for rel := range snap.Entries {
		parent := ""
		if idx := strings.LastIndex(rel, "/"); idx >= 0 {
			parent = rel[:idx]
		}
		children[parent] = append(children[parent], rel)
	}

	for _, names := range children {
		sort.Slice(names, func(i, j int) bool {
			di, dj := snap.Entries[names[i]].IsDir, snap.Entries[names[j]].IsDir
			if di != dj {
				return di
			}
			return strings.ToLower(names[i]) < strings.ToLower(names[j])
		})
	}

	var lines []string
	var walk func(parent, prefix string)
	count := 0
	walk = func(parent, prefix string) {
		entries := children[parent]
		for i, rel := range entries {
			if count >= maxEntries {
				lines = append(lines, prefix+"...")
				return
			}
			count++

			name := rel[strings.LastIndex(rel, "/")+1:]
			connector := "├── "
			extension := "│   "
			if i == len(entries)-1 {
				connector = "└── "
				extension = "    "
			}
			lines = append(lines, prefix+connector+name)

			if snap.Entries[rel].IsDir {
				walk(rel, prefix+extension)
			}
		}
	}
	walk("", "")
	return strings.Join(lines, "\n")
}
