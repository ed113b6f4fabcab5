package classify

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/skillify/internal/evidence"
	"github.com/firefly-engineering/skillify/internal/logging"
)

// Bounds on supplemental entry points, matching the original generator.
const (
	maxMakeTargets = 10
	maxEntryPoints = 15
)

// manifestReadLimit bounds manifest reads; manifests larger than this are
// not worth parsing for a name and a description.
const manifestReadLimit = 256 * 1024

// Analyze runs classification and enriches the profile with metadata and
// supplemental entry points read from manifest contents. The enrichment is
// deterministic: script names are sorted, Makefile targets keep file order.
func Analyze(snap *evidence.RepositorySnapshot, ev *evidence.Evidence) ProjectProfile {
	profile := Classify(ev)
	profile.Metadata = extractMetadata(snap, ev)
	if profile.Metadata.Name == "" {
		profile.Metadata.Name = filepath.Base(snap.Root)
	}

	if profile.Type == TypePython && ev.HasFile("pyproject.toml") {
		profile.PackageManager = refinePythonManager(snap)
	}
	if profile.Type == TypeNode {
		profile.Language = refineNodeLanguage(snap, ev)
	}

	profile.EntryPoints = appendMakeTargets(profile.EntryPoints, snap, ev)
	profile.EntryPoints = appendPackageScripts(profile.EntryPoints, snap, ev, profile.PackageManager)
	if len(profile.EntryPoints) > maxEntryPoints {
		profile.EntryPoints = profile.EntryPoints[:maxEntryPoints]
	}

	return profile
}

// pyprojectManifest covers both PEP 621 and poetry tool tables.
type pyprojectManifest struct {
	Project struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
		Version     string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name        string `toml:"name"`
			Description string `toml:"description"`
			Version     string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

type cargoManifest struct {
	Package struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
		Version     string `toml:"version"`
	} `toml:"package"`
}

type packageJSONManifest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Scripts     map[string]string `json:"scripts"`
}

// extractMetadata pulls name/description/version out of whichever manifest
// is present. Malformed manifests degrade to empty metadata, never error.
func extractMetadata(snap *evidence.RepositorySnapshot, ev *evidence.Evidence) Metadata {
	if ev.HasFile("package.json") {
		if data, err := snap.ReadFile("package.json", manifestReadLimit); err == nil {
			var pkg packageJSONManifest
			if json.Unmarshal(data, &pkg) == nil && pkg.Name != "" {
				return Metadata{Name: pkg.Name, Description: pkg.Description, Version: pkg.Version}
			}
		}
	}

	if ev.HasFile("pyproject.toml") {
		if data, err := snap.ReadFile("pyproject.toml", manifestReadLimit); err == nil {
			var py pyprojectManifest
			if toml.Unmarshal(data, &py) == nil {
				if py.Project.Name != "" {
					return Metadata{Name: py.Project.Name, Description: py.Project.Description, Version: py.Project.Version}
				}
				if py.Tool.Poetry.Name != "" {
					return Metadata{Name: py.Tool.Poetry.Name, Description: py.Tool.Poetry.Description, Version: py.Tool.Poetry.Version}
				}
			}
		}
	}

	if ev.HasFile("Cargo.toml") {
		if data, err := snap.ReadFile("Cargo.toml", manifestReadLimit); err == nil {
			var cargo cargoManifest
			if toml.Unmarshal(data, &cargo) == nil && cargo.Package.Name != "" {
				return Metadata{Name: cargo.Package.Name, Description: cargo.Package.Description, Version: cargo.Package.Version}
			}
		}
	}

	if ev.HasFile("go.mod") {
		if data, err := snap.ReadFile("go.mod", manifestReadLimit); err == nil {
			if m := goModuleRegex.FindSubmatch(data); m != nil {
				path := string(m[1])
				return Metadata{Name: path[strings.LastIndex(path, "/")+1:]}
			}
		}
	}

	return Metadata{}
}

var goModuleRegex = regexp.MustCompile(`(?m)^module\s+(\S+)`)

func refinePythonManager(snap *evidence.RepositorySnapshot) string {
	data, err := snap.ReadFile("pyproject.toml", manifestReadLimit)
	if err != nil {
		return "pip"
	}
	content := string(data)
	if strings.Contains(content, "[tool.poetry]") {
		return "poetry"
	}
	if strings.Contains(content, "[tool.hatch") {
		return "hatch"
	}
	return "pip"
}

func refineNodeLanguage(snap *evidence.RepositorySnapshot, ev *evidence.Evidence) string {
	if ev.HasFile("tsconfig.json") {
		return "typescript"
	}
	if data, err := snap.ReadFile("package.json", manifestReadLimit); err == nil {
		if strings.Contains(string(data), `"typescript"`) {
			return "typescript"
		}
	}
	return "javascript"
}

// makeTargetRegex matches Makefile rule targets at line starts.
var makeTargetRegex = regexp.MustCompile(`(?m)^([a-zA-Z_][a-zA-Z0-9_-]*):`)

// commonMakeTargets are prepended rather than appended when present.
var commonMakeTargets = map[string]bool{
	"all": true, "clean": true, "install": true, "test": true, "build": true,
}

func appendMakeTargets(eps []string, snap *evidence.RepositorySnapshot, ev *evidence.Evidence) []string {
	if !ev.HasFile("Makefile") {
		return eps
	}
	data, err := snap.ReadFile("Makefile", manifestReadLimit)
	if err != nil {
		return eps
	}

	matches := makeTargetRegex.FindAllSubmatch(data, -1)
	count := 0
	for _, m := range matches {
		if count >= maxMakeTargets {
			break
		}
		target := string(m[1])
		count++
		if commonMakeTargets[target] {
			eps = append([]string{"make " + target}, eps...)
		} else {
			eps = append(eps, "make "+target)
		}
	}
	return eps
}

func appendPackageScripts(eps []string, snap *evidence.RepositorySnapshot, ev *evidence.Evidence, manager string) []string {
	if !ev.HasFile("package.json") {
		return eps
	}
	data, err := snap.ReadFile("package.json", manifestReadLimit)
	if err != nil {
		return eps
	}
	var pkg packageJSONManifest
	if err := json.Unmarshal(data, &pkg); err != nil {
		logging.Debug("skipping malformed package.json", "error", err)
		return eps
	}

	if manager == "" {
		manager = "npm"
	}

	// Sorted for stable output; JSON object order is not preserved.
	names := make([]string, 0, len(pkg.Scripts))
	for name := range pkg.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		eps = append(eps, manager+" run "+name)
	}
	return eps
}
