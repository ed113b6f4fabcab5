package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/skillify/internal/classify"
	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/docs"
	"github.com/firefly-engineering/skillify/internal/errors"
	"github.com/firefly-engineering/skillify/internal/evidence"
	"github.com/firefly-engineering/skillify/internal/testutil"
)

// pipeline runs analysis end to end on a fixture and returns the compose
// inputs.
func pipeline(t *testing.T, fixture *testutil.FixtureRepo, opts config.Options) (classify.ProjectProfile, []docs.DocumentationUnit, *evidence.RepositorySnapshot) {
	t.Helper()
	snap, err := evidence.Snapshot(fixture.Root, opts)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	ev := evidence.Collect(snap, opts)
	profile := classify.Analyze(snap, ev)
	units, _ := docs.Extract(snap, ev, opts)
	return profile, units, snap
}

func TestComposeSkillMD(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).PythonProject("compose-demo")
	opts := config.DefaultOptions()
	profile, units, snap := pipeline(t, fixture, opts)

	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	skill, ok := b.Lookup(config.SkillFileName)
	if !ok {
		t.Fatal("SKILL.md not planned")
	}
	content := string(skill.Content)

	if !strings.HasPrefix(content, "---\n") {
		t.Errorf("SKILL.md must start with front-matter, got %q", content[:20])
	}
	for _, want := range []string{
		"name: compose-demo",
		"project_type: python",
		"language: python",
		"# compose-demo",
		"## Quick Start",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("SKILL.md missing %q", want)
		}
	}
	if strings.Contains(content, "## Wrapper") {
		t.Error("Wrapper section must be absent without --with-wrapper")
	}

	if _, ok := b.Lookup(config.ReferencesDir + "/README.md"); !ok {
		t.Error("README reference not planned")
	}
}

func TestComposeDeterministic(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).PythonProject("stable")
	opts := config.DefaultOptions()
	profile, units, snap := pipeline(t, fixture, opts)

	first, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Files) != len(second.Files) {
		t.Fatalf("File count differs: %d vs %d", len(first.Files), len(second.Files))
	}
	for i := range first.Files {
		if first.Files[i].Path != second.Files[i].Path {
			t.Errorf("File order differs at %d: %s vs %s", i, first.Files[i].Path, second.Files[i].Path)
		}
		if string(first.Files[i].Content) != string(second.Files[i].Content) {
			t.Errorf("File %s not byte-identical across runs", first.Files[i].Path)
		}
	}
}

func TestComposeEmptyRepository(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).WriteFile("data.bin", "x")
	opts := config.DefaultOptions()
	opts.Name = "bare"
	profile, units, snap := pipeline(t, fixture, opts)

	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatalf("Compose must succeed on evidence-free repositories: %v", err)
	}
	if len(b.Files) != 1 {
		t.Errorf("Expected only SKILL.md, got %d files", len(b.Files))
	}
	skill, _ := b.Lookup(config.SkillFileName)
	if !strings.Contains(string(skill.Content), "project_type: unknown") {
		t.Error("Unknown type must be stated, not omitted")
	}

	found := false
	for _, d := range b.Dirs {
		if d == config.ReferencesDir {
			found = true
		}
	}
	if !found {
		t.Error("references/ is always planned, even when empty")
	}
}

func TestComposeInvalidName(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).PythonProject("x")
	opts := config.DefaultOptions()
	opts.Name = "Has Spaces"
	profile, units, snap := pipeline(t, fixture, opts)

	_, err := Compose(profile, units, snap, opts)
	if err == nil {
		t.Fatal("Expected validation error for invalid name")
	}
}

func TestComposeWrapperScripts(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).PythonProject("wrapped")
	opts := config.DefaultOptions()
	opts.WithWrapper = true
	profile, units, snap := pipeline(t, fixture, opts)

	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}

	entry, ok := b.Lookup(config.ScriptsDir + "/entrypoint.py")
	if !ok {
		t.Fatal("entrypoint.py not planned")
	}
	if entry.Mode != 0755 {
		t.Errorf("Entry point must be executable, got %v", entry.Mode)
	}
	content := string(entry.Content)
	if !strings.HasPrefix(content, "#!/usr/bin/env python3") {
		t.Errorf("Missing shebang: %q", content[:40])
	}
	for _, want := range []string{"request.json", "result.json", "sessions_spawn", `"pending"`} {
		if !strings.Contains(content, want) {
			t.Errorf("entrypoint.py missing %q", want)
		}
	}

	init, ok := b.Lookup(config.ScriptsDir + "/" + config.InitScript)
	if !ok {
		t.Fatal("init.sh not planned")
	}
	if !strings.Contains(string(init.Content), "pip install -e .") {
		t.Errorf("init.sh missing pip setup, got:\n%s", init.Content)
	}

	skill, _ := b.Lookup(config.SkillFileName)
	if !strings.Contains(string(skill.Content), "## Wrapper") {
		t.Error("SKILL.md must document the wrapper when requested")
	}
}

func TestComposeNodeWrapperUsesJavaScript(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).
		WriteFile("package.json", `{"name":"js-app"}`).
		WriteFile("index.js", "x")
	opts := config.DefaultOptions()
	opts.WithWrapper = true
	profile, units, snap := pipeline(t, fixture, opts)

	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Lookup(config.ScriptsDir + "/entrypoint.js"); !ok {
		t.Error("Node projects get a JavaScript entry point")
	}
	if _, ok := b.Lookup(config.ScriptsDir + "/entrypoint.py"); ok {
		t.Error("Node projects must not also get a Python entry point")
	}
}

func TestComposeVendorPointsAtProjectDir(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).PythonProject("vend")
	opts := config.DefaultOptions()
	opts.WithWrapper = true
	opts.Vendor = true
	profile, units, snap := pipeline(t, fixture, opts)

	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}
	if b.VendorRoot != snap.Root {
		t.Errorf("VendorRoot: %s", b.VendorRoot)
	}
	entry, _ := b.Lookup(config.ScriptsDir + "/entrypoint.py")
	if !strings.Contains(string(entry.Content), `"../vendor"`) {
		t.Error("Vendored bundles must point the wrapper at ../vendor")
	}
}

func TestSanitizeSkillName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"My Project", "my-project"},
		{"snake_case_name", "snake-case-name"},
		{"@scope/pkg", "scope-pkg"},
		{"v1.2.3", "v1-2-3"},
		{"---", "skill"},
		{"", "skill"},
		{"ALLCAPS", "allcaps"},
		{"already-fine", "already-fine"},
		{strings.Repeat("a", 80), strings.Repeat("a", 63)},
	}
	for _, tt := range tests {
		if got := SanitizeSkillName(tt.in); got != tt.want {
			t.Errorf("SanitizeSkillName(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := SanitizeSkillName(tt.in); config.ValidateSkillName(got) != nil {
			t.Errorf("SanitizeSkillName(%q) produced invalid name %q", tt.in, got)
		}
	}
}

func TestPublishWritesEverything(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).PythonProject("pub")
	opts := config.DefaultOptions()
	profile, units, snap := pipeline(t, fixture, opts)
	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(t.TempDir(), "pub")
	if err := (&StagedWriter{}).Publish(b, output); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	for _, f := range b.Files {
		if _, err := os.Stat(filepath.Join(output, filepath.FromSlash(f.Path))); err != nil {
			t.Errorf("Planned file %s not published: %v", f.Path, err)
		}
	}

	// No stage residue next to the output.
	entries, err := os.ReadDir(filepath.Dir(output))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".stage-") {
			t.Errorf("Stage directory left behind: %s", e.Name())
		}
	}
}

func TestPublishRefusesExistingOutput(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).PythonProject("dup")
	opts := config.DefaultOptions()
	profile, units, snap := pipeline(t, fixture, opts)
	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(t.TempDir(), "dup")
	if err := os.MkdirAll(output, 0755); err != nil {
		t.Fatal(err)
	}

	err = (&StagedWriter{}).Publish(b, output)
	if err == nil {
		t.Fatal("Expected error for occupied output path")
	}
	var se *errors.SkillifyError
	if !errors.As(err, &se) || se.Code != errors.ExitCompose {
		t.Errorf("Expected compose exit code, got %v", err)
	}
}

func TestPublishFailureLeavesNothing(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).PythonProject("fail")
	opts := config.DefaultOptions()
	opts.Vendor = true
	profile, units, snap := pipeline(t, fixture, opts)
	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}
	// Point vendoring at a missing tree so the write fails mid-way.
	b.VendorRoot = filepath.Join(t.TempDir(), "gone")

	output := filepath.Join(t.TempDir(), "fail")
	err = (&StagedWriter{}).Publish(b, output)
	if err == nil {
		t.Fatal("Expected publish failure")
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("Failed publish must leave nothing at the output path")
	}
}

func TestPublishVendorsTreeWithPruning(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t).
		PythonProject("vendored").
		WriteFile(".git/HEAD", "ref: refs/heads/main").
		WriteFile("node_modules/dep/index.js", "x")
	opts := config.DefaultOptions()
	opts.Vendor = true
	profile, units, snap := pipeline(t, fixture, opts)
	b, err := Compose(profile, units, snap, opts)
	if err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(t.TempDir(), "vendored")
	if err := (&StagedWriter{}).Publish(b, output); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(output, "vendor", "pyproject.toml")); err != nil {
		t.Errorf("Vendored file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(output, "vendor", ".git")); !os.IsNotExist(err) {
		t.Error(".git must be pruned from the vendored copy")
	}
	if _, err := os.Stat(filepath.Join(output, "vendor", "node_modules")); !os.IsNotExist(err) {
		t.Error("node_modules must be pruned from the vendored copy")
	}
}

func TestTreeStringBounded(t *testing.T) {
	fixture := testutil.NewFixtureRepo(t)
	for i := 0; i < 60; i++ {
		fixture.WriteFile(filepath.Join("files", "f"+string(rune('a'+i%26))+string(rune('0'+i/26))+".txt"), "x")
	}
	snap, err := evidence.Snapshot(fixture.Root, config.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	tree := treeString(snap, 10)
	lines := strings.Split(tree, "\n")
	if len(lines) > 12 {
		t.Errorf("Tree not bounded: %d lines", len(lines))
	}
	if !strings.Contains(tree, "...") {
		t.Error("Bounded tree must indicate elision")
	}
}
