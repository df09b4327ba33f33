/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datacombine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"

	"github.com/suparena/datacombine/collection"
	"github.com/suparena/datacombine/datasets"
	dcerrors "github.com/suparena/datacombine/errors"
	"github.com/suparena/datacombine/manifest"
	"github.com/suparena/datacombine/objectstore"
)

// Combiner merges per-region dataset files into one global file per
// dataset.
type Combiner struct {
	manifestPath string
	dataDir      string
	outputDir    string

	fsys         fs.Filesystem
	store        objectstore.Store
	logger       *slog.Logger
	now          func() time.Time
	expanded     bool
	deleteInputs bool
	discover     bool
}

// Summary reports what one run did.
type Summary struct {
	// Regions lists the region codes that contributed, in manifest order.
	Regions []string `json:"regions"`
	// Written lists the combined files created, in dataset order.
	Written []string `json:"written"`
	// Counts maps each written dataset to its record count.
	Counts map[datasets.Name]int `json:"counts"`
	// Uploaded lists the object keys stored remotely.
	Uploaded []string `json:"uploaded,omitempty"`
	// Deleted lists the per-region files removed after success.
	Deleted []string `json:"deleted,omitempty"`
	// DeleteFailures lists per-region files that could not be removed.
	DeleteFailures []string `json:"deleteFailures,omitempty"`
	// StartedAt and FinishedAt bound the run.
	StartedAt  strfmt.DateTime `json:"startedAt"`
	FinishedAt strfmt.DateTime `json:"finishedAt"`
}

// combined is one dataset's merge result, held in memory between the read
// and write phases.
type combined struct {
	desc    datasets.Descriptor
	records collection.Collection
	sources []string
	name    string
	data    []byte
}

// New creates a Combiner reading the manifest at manifestPath and the
// per-region files in dataDir. Combined files land in dataDir unless
// WithOutputDir redirects them.
func New(manifestPath, dataDir string, opts ...Option) *Combiner {
	c := &Combiner{
		manifestPath: manifestPath,
		dataDir:      dataDir,
		fsys:         billy.NewOSFS("/"),
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.outputDir == "" {
		c.outputDir = c.dataDir
	}
	return c
}

// Run executes one combining pass: read every region's files, merge them
// in memory, write one combined file per dataset, then optionally upload
// and delete the inputs. Nothing is written until every input has been
// read, so a failed run leaves the directory as it found it.
func (c *Combiner) Run(ctx context.Context) (*Summary, error) {
	started := c.now()

	regions, err := c.regions()
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: nothing to combine in %s", dcerrors.ErrNoRegions, c.dataDir)
	}

	ids := make([]string, len(regions))
	for i, r := range regions {
		ids[i] = r.ID
	}
	c.logger.Info("combining regions", "regions", ids, "datadir", c.dataDir, "expanded", c.expanded)

	merged, err := c.read(ctx, ids)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Regions:   ids,
		Counts:    make(map[datasets.Name]int),
		StartedAt: strfmt.DateTime(started),
	}

	if err := c.write(ctx, merged, summary); err != nil {
		return nil, err
	}

	if c.store != nil {
		keys, err := c.upload(ctx, merged)
		if err != nil {
			return nil, err
		}
		summary.Uploaded = keys
	}

	if c.deleteInputs {
		c.cleanup(merged, summary)
	}

	finished := c.now()
	summary.FinishedAt = strfmt.DateTime(finished)
	c.logTotals(summary, finished.Sub(started))
	return summary, nil
}

// regions resolves the contributing region set, either from the manifest
// or, in discovery mode, by probing the data directory and rewriting the
// manifest to match.
func (c *Combiner) regions() ([]manifest.Region, error) {
	if !c.discover {
		return manifest.Load(c.fsys, c.manifestPath)
	}

	regions, err := manifest.Discover(c.fsys, c.dataDir, c.expanded)
	if err != nil {
		return nil, err
	}
	if len(regions) > 0 {
		if err := manifest.Write(c.fsys, c.manifestPath, regions); err != nil {
			return nil, err
		}
		c.logger.Info("rebuilt region manifest", "path", c.manifestPath, "regions", len(regions))
	}
	return regions, nil
}

// read loads and merges every region's file for every dataset. A dataset
// no region produced drops out; any unreadable or undecodable file is
// fatal before the first output is written.
func (c *Combiner) read(ctx context.Context, regions []string) ([]*combined, error) {
	var merged []*combined
	for _, desc := range datasets.All {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cmb := &combined{desc: desc, name: c.fileName(desc.Name.CombinedFile())}
		for _, region := range regions {
			path := filepath.Join(c.dataDir, c.fileName(desc.Name.PerRegionFile(region)))
			data, err := c.fsys.ReadFile(path)
			if err != nil {
				if errors.Is(err, iofs.ErrNotExist) {
					c.logger.Debug("skipping missing input", "path", path)
					continue
				}
				return nil, fmt.Errorf("reading %q: %w", path, err)
			}

			col, err := collection.Decode(data, desc.Shape)
			if err != nil {
				return nil, dcerrors.NewMalformedInputError(path, err)
			}

			if cmb.records == nil {
				cmb.records = col
			} else if err := cmb.records.Merge(col); err != nil {
				return nil, dcerrors.NewMalformedInputError(path, err)
			}
			cmb.sources = append(cmb.sources, path)
		}

		if cmb.records == nil {
			c.logger.Debug("dataset absent in every region", "dataset", desc.Name)
			continue
		}

		if desc.Finalize != nil {
			finalized, err := desc.Finalize(cmb.records)
			if err != nil {
				return nil, fmt.Errorf("finalizing dataset %s: %w", desc.Name, err)
			}
			cmb.records = finalized
		}
		merged = append(merged, cmb)
	}
	return merged, nil
}

// write encodes each merged dataset and stores it in the output directory.
func (c *Combiner) write(ctx context.Context, merged []*combined, summary *Summary) error {
	if err := c.fsys.MkdirAll(c.outputDir, 0o755); err != nil {
		return dcerrors.NewWriteError(c.outputDir, err)
	}

	for _, cmb := range merged {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := json.MarshalIndent(cmb.records, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding dataset %s: %w", cmb.desc.Name, err)
		}
		cmb.data = data

		path := filepath.Join(c.outputDir, cmb.name)
		if err := c.fsys.WriteFile(path, data, 0o644); err != nil {
			return dcerrors.NewWriteError(path, err)
		}

		summary.Written = append(summary.Written, path)
		summary.Counts[cmb.desc.Name] = cmb.records.Len()
		c.logger.Info("wrote combined dataset", "path", path, "records", cmb.records.Len())
	}
	return nil
}

// upload publishes every written file through the configured store.
func (c *Combiner) upload(ctx context.Context, merged []*combined) ([]string, error) {
	files := make([]UploadFile, 0, len(merged))
	for _, cmb := range merged {
		files = append(files, UploadFile{Name: cmb.name, Data: cmb.data})
	}

	return NewUploader(c.store).
		WithLogger(c.logger).
		WithNow(c.now).
		Upload(ctx, files)
}

// cleanup deletes the per-region files that fed the run. Failures are
// logged and reported in the summary but do not fail the run; the combined
// outputs already exist.
func (c *Combiner) cleanup(merged []*combined, summary *Summary) {
	for _, cmb := range merged {
		for _, path := range cmb.sources {
			if err := c.fsys.Remove(path); err != nil {
				summary.DeleteFailures = append(summary.DeleteFailures, path)
				c.logger.Warn("could not delete input", "path", path, "error", err)
				continue
			}
			summary.Deleted = append(summary.Deleted, path)
			c.logger.Info("deleted input", "path", path)
		}
	}
}

// fileName applies the expanded-run prefix when needed.
func (c *Combiner) fileName(name string) string {
	if c.expanded {
		return datasets.ExpandedPrefix + name
	}
	return name
}

// logTotals emits the end-of-run accounting: one line per dataset plus the
// execution time.
func (c *Combiner) logTotals(summary *Summary, took time.Duration) {
	for _, name := range datasets.Names() {
		count, ok := summary.Counts[name]
		if !ok {
			continue
		}
		c.logger.Info("dataset total", "dataset", name, "records", count)
	}
	c.logger.Info("combining complete",
		"datasets", len(summary.Written),
		"uploads", len(summary.Uploaded),
		"took", took.String(),
	)
}
