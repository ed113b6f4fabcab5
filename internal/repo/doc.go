// Package repo acquires the repository to analyze.
//
// A Provider is the external collaborator that turns a source string into
// a local directory path: Local validates an existing directory, Git
// shallow-clones a URL into a temp dir through the system executor. The
// analysis pipeline never fetches anything itself.
package repo
