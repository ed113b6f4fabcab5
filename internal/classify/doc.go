// Package classify maps repository evidence to a project profile.
//
// Detection uses an ordered rule table evaluated top to bottom with
// first-match-wins precedence: language/runtime manifests (python, node,
// rust, go, ruby, java, dotnet, terraform) come before generic build
// descriptors. Container descriptors never decide the primary type; they
// set the secondary Containerized attribute, so a repository can be both
// python and containerized.
//
// Classification is a pure, deterministic function of the evidence and
// never fails; with no matching rule the profile is TypeUnknown. Analyze
// layers manifest-derived metadata (package.json, pyproject.toml,
// Cargo.toml, go.mod) and supplemental entry points (Makefile targets,
// package.json scripts) on top of the pure classification.
package classify
