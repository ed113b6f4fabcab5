// Package bundle composes and publishes skill bundles.
//
// Compose assembles the whole output tree in memory — SKILL.md with YAML
// front-matter, one reference file per documentation unit, wrapper scripts
// when requested — without touching the filesystem. The FileWriter
// collaborator then persists it; the default StagedWriter stages into a
// scratch sibling directory, verifies every planned file, and renames the
// stage into place so the target path never holds a partial bundle.
//
// # Generated layout
//
//	<output>/
//	  SKILL.md
//	  references/
//	    README.md
//	    API.md
//	  scripts/          (only with --with-wrapper)
//	    entrypoint.<ext>
//	    init.sh
//	  vendor/           (only with --vendor)
package bundle
