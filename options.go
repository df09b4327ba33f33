/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datacombine

import (
	"log/slog"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/suparena/datacombine/objectstore"
)

// Option configures a Combiner.
type Option func(*Combiner)

// WithFilesystem runs the combiner against fsys instead of the host
// filesystem. Tests use an in-memory filesystem.
func WithFilesystem(fsys fs.Filesystem) Option {
	return func(c *Combiner) {
		if fsys != nil {
			c.fsys = fsys
		}
	}
}

// WithLogger routes run logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Combiner) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObjectStore publishes every combined file to store after it is
// written locally.
func WithObjectStore(store objectstore.Store) Option {
	return func(c *Combiner) {
		c.store = store
	}
}

// WithOutputDir writes combined files into dir instead of next to the
// per-region inputs.
func WithOutputDir(dir string) Option {
	return func(c *Combiner) {
		c.outputDir = dir
	}
}

// WithExpanded switches the run to the expanded-set files, which carry the
// "expanded_" prefix on both inputs and outputs.
func WithExpanded(expanded bool) Option {
	return func(c *Combiner) {
		c.expanded = expanded
	}
}

// WithDeleteInputs removes every per-region file that was read, once all
// outputs are written and uploaded.
func WithDeleteInputs(deleteInputs bool) Option {
	return func(c *Combiner) {
		c.deleteInputs = deleteInputs
	}
}

// WithRegionDiscovery rebuilds the region manifest by probing the data
// directory instead of requiring one to exist. The discovered set is
// written back to the manifest path for later runs.
func WithRegionDiscovery(discover bool) Option {
	return func(c *Combiner) {
		c.discover = discover
	}
}

// WithNow overrides the clock used for run timestamps. Tests use it to pin
// upload prefixes.
func WithNow(now func() time.Time) Option {
	return func(c *Combiner) {
		if now != nil {
			c.now = now
		}
	}
}
