package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/skillify/internal/bundle"
	"github.com/firefly-engineering/skillify/internal/classify"
	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/docs"
	"github.com/firefly-engineering/skillify/internal/evidence"
	"github.com/firefly-engineering/skillify/internal/logging"
	"github.com/firefly-engineering/skillify/internal/repo"
	"github.com/firefly-engineering/skillify/internal/system"
)

var (
	generateOutput  string
	generateName    string
	generateWrapper bool
	generateVendor  bool
	generateKeep    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <source>",
	Short: "Generate a skill bundle from a repository",
	Long: `Generate analyzes a repository and writes a skill bundle.

The source is a local directory or a git URL; URLs are shallow-cloned
into a temporary directory that is removed after the run unless
--keep-clone is given.`,
	Example: `  skillify generate https://github.com/org/repo
  skillify generate /path/to/local/repo
  skillify generate . --output ./skills/my-skill --with-wrapper`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		opts := config.DefaultOptions()
		opts.Name = generateName
		opts.WithWrapper = generateWrapper
		opts.Vendor = generateVendor

		provider := repo.For(source, generateKeep, system.DefaultExecutor())
		if repo.IsRemote(source) {
			logInfo("Cloning %s...", source)
		}
		dir, cleanup, err := provider.Fetch(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		logInfo("Analyzing %s...", filepath.Base(dir))
		result, err := analyze(dir, opts)
		if err != nil {
			return err
		}

		name := opts.Name
		if name == "" {
			name = bundle.SanitizeSkillName(result.profile.Metadata.Name)
			opts.Name = name
		}

		outputDir := generateOutput
		if outputDir == "" {
			outputDir = filepath.Join("skills", name)
		}

		b, err := bundle.Compose(result.profile, result.units, result.snap, opts)
		if err != nil {
			return err
		}

		writer := &bundle.StagedWriter{}
		if err := writer.Publish(b, outputDir); err != nil {
			return err
		}

		printSummary(name, outputDir, result.profile, result.units, opts)
		return nil
	},
}

// analysis bundles the pipeline outputs handed to composition and display.
type analysis struct {
	snap    *evidence.RepositorySnapshot
	profile classify.ProjectProfile
	units   []docs.DocumentationUnit
	report  docs.Report
}

// analyze runs the read-only pipeline: snapshot, evidence, classification,
// documentation extraction.
func analyze(dir string, opts config.Options) (*analysis, error) {
	snap, err := evidence.Snapshot(dir, opts)
	if err != nil {
		return nil, err
	}

	ev := evidence.Collect(snap, opts)
	profile := classify.Analyze(snap, ev)
	units, report := docs.Extract(snap, ev, opts)

	for _, skipped := range report.Skipped {
		logWarning("Skipped %s (%s)", skipped.Path, skipped.Reason)
	}
	logging.Debug("analysis complete",
		"type", profile.Type,
		"entryPoints", len(profile.EntryPoints),
		"documents", len(units),
	)

	return &analysis{snap: snap, profile: profile, units: units, report: report}, nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default: ./skills/<name>)")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Skill name (default: derived from project metadata)")
	generateCmd.Flags().BoolVar(&generateWrapper, "with-wrapper", false, "Generate wrapper scripts implementing the skill contract")
	generateCmd.Flags().BoolVar(&generateVendor, "vendor", false, "Copy the source tree into the bundle under vendor/")
	generateCmd.Flags().BoolVar(&generateKeep, "keep-clone", false, "Keep the cloned repository (for URLs)")
	rootCmd.AddCommand(generateCmd)
}
