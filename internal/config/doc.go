// Package config holds generation options and the documented analysis
// constants for skillify.
//
// All tunable behavior of the pipeline lives here: the documentation size
// bound, the snapshot walk depth, the canonical documentation name table,
// and the directory prune set. Commands construct an Options value from
// flags on top of DefaultOptions and hand it to the pipeline; nothing in
// the pipeline reads configuration from the environment.
package config
