package bundle

import (
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/skillify/internal/classify"
	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/contract"
)

const contractVersionString = contract.Version

// entrypointName picks the wrapper script name for a profile. Node projects
// get a JavaScript entry point; everything else gets Python, which is the
// portable default for generated wrappers.
func entrypointName(profile classify.ProjectProfile) string {
	if profile.Type == classify.TypeNode {
		return "entrypoint.js"
	}
	return "entrypoint.py"
}

// setupCommands returns the install command lines for init.sh, keyed by the
// detected package manager. Paths and commands are shell-quoted.
func setupCommands(profile classify.ProjectProfile) []string {
	switch profile.PackageManager {
	case "pip":
		return []string{
			"python3 -m venv .venv",
			". .venv/bin/activate",
			"pip install -e .",
		}
	case "poetry":
		return []string{"poetry install"}
	case "hatch":
		return []string{"hatch env create"}
	case "npm", "pnpm", "yarn", "bun":
		return []string{shellquote.Join(profile.PackageManager, "install")}
	case "cargo":
		return []string{"cargo build"}
	case "go":
		return []string{"go build ./..."}
	case "bundler":
		return []string{"bundle install"}
	case "maven":
		return []string{"mvn -q package"}
	case "gradle":
		return []string{"gradle build"}
	case "dotnet":
		return []string{"dotnet build"}
	case "terraform":
		return []string{"terraform init"}
	}
	return nil
}

// runTask phrases the task text a pending "run" result hands to the
// orchestrator.
func runTask(profile classify.ProjectProfile) string {
	if len(profile.EntryPoints) == 0 {
		return "inspect the project and run the requested command."
	}

	entry := profile.EntryPoints[0]
	switch profile.Type {
	case classify.TypePython:
		return "run " + shellquote.Join("python3", entry) + "."
	case classify.TypeNode:
		return "run " + shellquote.Join("node", entry) + "."
	case classify.TypeGo:
		return "run " + shellquote.Join("go", "run", ".") + "."
	case classify.TypeRust:
		return "run " + shellquote.Join("cargo", "run") + "."
	default:
		return "run " + shellquote.Join(entry) + "."
	}
}

type scriptData struct {
	SkillName         string
	ContractVersion   string
	DefaultTimeout    int
	ProjectDirLiteral string
	ProjectType       string
	PackageManager    string
	EntryPoint        string
	RunTask           string
}

type initData struct {
	SkillName     string
	Vendor        bool
	VendorDir     string
	SetupCommands []string
}

// generateScripts renders the wrapper entry point and init.sh for the
// profile. A template failure fails the whole run; wrapper generation is
// never silently downgraded.
func generateScripts(name string, profile classify.ProjectProfile, opts config.Options) ([]File, error) {
	projectDir := "."
	if opts.Vendor {
		projectDir = "../" + config.VendorDir
	}

	entryPoint := ""
	if len(profile.EntryPoints) > 0 {
		entryPoint = profile.EntryPoints[0]
	}

	data := scriptData{
		SkillName:         name,
		ContractVersion:   contract.Version,
		DefaultTimeout:    contract.DefaultRunTimeoutSeconds,
		ProjectDirLiteral: strconv.Quote(projectDir),
		ProjectType:       string(profile.Type),
		PackageManager:    profile.PackageManager,
		EntryPoint:        entryPoint,
		RunTask:           runTask(profile),
	}

	entryName := entrypointName(profile)
	entryContent := renderTemplate(entryName, data)

	init := initData{
		SkillName:     name,
		Vendor:        opts.Vendor,
		VendorDir:     shellquote.Join(config.VendorDir),
		SetupCommands: setupCommands(profile),
	}
	initContent := renderTemplate("init.sh", init)

	return []File{
		{Path: config.ScriptsDir + "/" + entryName, Content: []byte(entryContent), Mode: 0755},
		{Path: config.ScriptsDir + "/" + config.InitScript, Content: []byte(initContent), Mode: 0755},
	}, nil
}
