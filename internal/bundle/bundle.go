package bundle

import (
	"io/fs"
)

// File is one planned file in a skill bundle.
type File struct {
	// Path is relative to the bundle root, slash-separated.
	Path string

	Content []byte
	Mode    fs.FileMode
}

// SkillBundle is the fully composed, in-memory output tree. It has no
// mutable state once composed; it is written whole or not at all.
type SkillBundle struct {
	// Files in deterministic order: SKILL.md, references, scripts.
	Files []File

	// Dirs are directories created even when empty (references/ always,
	// scripts/ when the wrapper is requested).
	Dirs []string

	// VendorRoot, when non-empty, is the source tree to copy verbatim
	// under vendor/ at publish time.
	VendorRoot string

	// PruneDirs are directory names excluded from the vendored copy.
	PruneDirs map[string]bool
}

// Lookup returns the planned file at path, if any.
func (b *SkillBundle) Lookup(path string) (File, bool) {
	for _, f := range b.Files {
		if f.Path == path {
			return f, true
		}
	}
	return File{}, false
}
