// Package evidence builds immutable repository snapshots and derives the
// filesystem facts the classifier and extractor consume.
//
// A snapshot records which paths exist within a bounded depth of the
// repository root. Marker files are only significant at the root; deeper
// levels exist to locate documentation candidates (docs/README.md and
// friends). The walk prunes VCS and build directories and treats
// unreadable entries as absent rather than failing: partial evidence is
// valid evidence.
package evidence
