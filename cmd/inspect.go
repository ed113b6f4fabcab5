package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/repo"
	"github.com/firefly-engineering/skillify/internal/system"
)

var inspectKeep bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <source>",
	Short: "Analyze a repository without writing a bundle",
	Long: `Inspect runs the analysis pipeline and prints the resulting project
profile. Nothing is written to disk; use it to preview what generate
would conclude about a repository.`,
	Example: `  skillify inspect .
  skillify inspect https://github.com/org/repo --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		provider := repo.For(source, inspectKeep, system.DefaultExecutor())
		dir, cleanup, err := provider.Fetch(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := analyze(dir, config.DefaultOptions())
		if err != nil {
			return err
		}
		profile := result.profile

		if jsonOutput {
			out := inspectReport{
				Source:         source,
				Type:           string(profile.Type),
				Containerized:  profile.Containerized,
				Language:       profile.Language,
				PackageManager: profile.PackageManager,
				EntryPoints:    profile.EntryPoints,
				HasCI:          profile.HasCI,
				Name:           profile.Metadata.Name,
				Description:    profile.Metadata.Description,
				Version:        profile.Metadata.Version,
				Documents:      len(result.units),
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Fprintln(os.Stdout, summaryTitleStyle.Render("Profile: "+filepath.Base(dir)))
		printField("Type", string(profile.Type))
		if profile.Containerized {
			printField("Containerized", "yes")
		}
		printField("Language", profile.Language)
		printField("Package manager", profile.PackageManager)
		for _, ep := range profile.EntryPoints {
			printField("Entry point", ep)
		}
		if profile.HasCI {
			printField("CI", "yes")
		}
		printField("Name", profile.Metadata.Name)
		printField("Description", profile.Metadata.Description)
		printField("Version", profile.Metadata.Version)
		printField("Documents", fmt.Sprintf("%d", len(result.units)))
		return nil
	},
}

// inspectReport is the stable JSON shape emitted by inspect --json.
type inspectReport struct {
	Source         string   `json:"source"`
	Type           string   `json:"type"`
	Containerized  bool     `json:"containerized"`
	Language       string   `json:"language,omitempty"`
	PackageManager string   `json:"package_manager,omitempty"`
	EntryPoints    []string `json:"entry_points,omitempty"`
	HasCI          bool     `json:"has_ci"`
	Name           string   `json:"name,omitempty"`
	Description    string   `json:"description,omitempty"`
	Version        string   `json:"version,omitempty"`
	Documents      int      `json:"documents"`
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(os.Stdout, "  %s %s\n",
		summaryLabelStyle.Render(fmt.Sprintf("%-16s", label)),
		summaryValueStyle.Render(value))
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectKeep, "keep-clone", false, "Keep the cloned repository (for URLs)")
	rootCmd.AddCommand(inspectCmd)
}
