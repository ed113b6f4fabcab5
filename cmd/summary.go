package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/skillify/internal/classify"
	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/docs"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	summaryPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))
)

// printSummary renders the post-generation report to stdout.
func printSummary(name, outputDir string, profile classify.ProjectProfile, units []docs.DocumentationUnit, opts config.Options) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render("Skill: " + name))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			summaryLabelStyle.Render(fmt.Sprintf("%-16s", label)),
			summaryValueStyle.Render(value)))
	}

	typeLine := string(profile.Type)
	if profile.Containerized {
		typeLine += " (containerized)"
	}
	row("Project type", typeLine)
	row("Language", profile.Language)
	row("Package manager", profile.PackageManager)
	if len(profile.EntryPoints) > 0 {
		row("Entry point", profile.EntryPoints[0])
	}
	row("References", fmt.Sprintf("%d document(s)", len(units)))

	extras := []string{}
	if opts.WithWrapper {
		extras = append(extras, "wrapper scripts")
	}
	if opts.Vendor {
		extras = append(extras, "vendored source")
	}
	if len(extras) > 0 {
		row("Includes", strings.Join(extras, ", "))
	}

	b.WriteString("\n")
	fmt.Fprint(os.Stdout, b.String())

	logSuccess("Skill written to %s", summaryPathStyle.Render(outputDir))
}
