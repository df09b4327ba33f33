/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/suparena/datacombine/datasets"
)

// regionBasins maps each region the upstream generators produce to the
// leading basin digits it covers.
var regionBasins = map[string][]int{
	"af": {1},
	"eu": {2},
	"as": {3, 4},
	"oc": {5},
	"sa": {6},
	"na": {7, 8, 9},
}

// KnownRegions returns every region code the generators can produce, sorted.
func KnownRegions() []string {
	regions := make([]string, 0, len(regionBasins))
	for r := range regionBasins {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// BasinPrefixes returns the leading basin digits for a known region code.
func BasinPrefixes(region string) ([]int, bool) {
	basins, ok := regionBasins[region]
	return basins, ok
}

// Discover probes dataDir for per-region reaches files and returns the
// regions that have one, in sorted region order. Every generator run writes
// a reaches file, which makes it the presence marker. Expanded runs probe
// the expanded file names instead.
func Discover(fsys fs.Filesystem, dataDir string, expanded bool) ([]Region, error) {
	var regions []Region
	for _, id := range KnownRegions() {
		name := datasets.Reaches.PerRegionFile(id)
		if expanded {
			name = datasets.ExpandedPrefix + name
		}
		found, err := fsys.Exists(filepath.Join(dataDir, name))
		if err != nil {
			return nil, fmt.Errorf("probing %s: %w", name, err)
		}
		if found {
			regions = append(regions, Region{ID: id, Basins: regionBasins[id]})
		}
	}
	return regions, nil
}
