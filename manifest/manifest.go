/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/input-output-hk/catalyst-forge-libs/fs"

	dcerrors "github.com/suparena/datacombine/errors"
)

// Region identifies one partition of the upstream generators' output.
type Region struct {
	// ID is the short region code used in file names, for example "na".
	ID string
	// Basins lists the leading basin digits the region covers, when known.
	Basins []int
}

// Load reads and parses the manifest at path. A missing or unreadable
// manifest is an error; callers that can rebuild the region set should use
// Discover instead.
func Load(fsys fs.Filesystem, path string) ([]Region, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, dcerrors.NewManifestError(path, err)
	}
	regions, err := Parse(data)
	if err != nil {
		return nil, dcerrors.NewManifestError(path, err)
	}
	return regions, nil
}

// Parse decodes manifest contents. Manifest order is preserved; a duplicate
// region code keeps its first entry.
func Parse(data []byte) ([]Region, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("manifest must be a JSON array: %w", err)
	}
	if entries == nil {
		return nil, errors.New("manifest must be a JSON array, got null")
	}

	regions := make([]Region, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, raw := range entries {
		region, err := parseEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if seen[region.ID] {
			continue
		}
		seen[region.ID] = true
		regions = append(regions, region)
	}
	return regions, nil
}

// parseEntry decodes one manifest entry: either a bare region code or a
// single-key object mapping the code to its basin digits.
func parseEntry(raw json.RawMessage) (Region, error) {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		if id == "" {
			return Region{}, errors.New("empty region code")
		}
		return Region{ID: id}, nil
	}

	var obj map[string][]int
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Region{}, fmt.Errorf("region entry must be a string or a single-key object: %s", raw)
	}
	if len(obj) != 1 {
		return Region{}, fmt.Errorf("region object must have exactly one key, got %d", len(obj))
	}
	var rid string
	for k := range obj {
		rid = k
	}
	if rid == "" {
		return Region{}, errors.New("empty region code")
	}
	return Region{ID: rid, Basins: obj[rid]}, nil
}

// Write stores regions at path in the on-disk manifest form: a JSON array
// of single-key objects mapping each region code to its basin digits.
func Write(fsys fs.Filesystem, path string, regions []Region) error {
	entries := make([]map[string][]int, 0, len(regions))
	for _, r := range regions {
		basins := r.Basins
		if basins == nil {
			basins = []int{}
		}
		entries = append(entries, map[string][]int{r.ID: basins})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return dcerrors.NewWriteError(path, err)
	}
	return nil
}
