// Package config provides the configuration of the simplegraph tooling. The configuration covers how graph files are
// checked when loaded and how logs are written; it has no influence on the graph queries themselves.
package config

import (
	"go.arcalot.io/log/v2"
)

// CycleCheck selects when cycles in a loaded graph are detected.
type CycleCheck string

const (
	// CycleCheckLazy only reports cycles when a query walks into one.
	CycleCheckLazy CycleCheck = "lazy"
	// CycleCheckEager checks every root for cycles right after a graph file is loaded.
	CycleCheckEager CycleCheck = "eager"
)

// Config is the main configuration structure for loading and querying graphs.
type Config struct {
	// CycleCheck determines whether loaded graphs are checked for cycles before any query runs.
	CycleCheck CycleCheck `json:"cycle_check" yaml:"cycle_check"`
	// Log configures logging.
	Log log.Config `json:"log" yaml:"log"`
}
