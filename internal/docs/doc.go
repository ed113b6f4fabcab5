// Package docs extracts and normalizes repository documentation into the
// fixed reference format used by generated bundles.
//
// Candidates arrive ranked from the evidence collector. Each is read under
// a configured byte bound (overruns are truncated with an explicit
// marker), normalized for portable markdown, and assigned a canonical
// destination name: any README variant becomes README.md, API variants
// become API.md, and so on per the configured rule table. Collisions get a
// numeric suffix in first-seen order.
package docs
