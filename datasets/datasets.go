/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datasets

import (
	"fmt"

	"github.com/suparena/datacombine/collection"
)

// Name identifies one dataset produced per region by the upstream jobs.
type Name string

// The closed set of dataset names the combiner knows how to merge.
const (
	Basin       Name = "basin"
	CyclePasses Name = "cycle_passes"
	HivdiSets   Name = "hivdisets"
	MetroSets   Name = "metrosets"
	Passes      Name = "passes"
	ReachNode   Name = "reach_node"
	Reaches     Name = "reaches"
	S3List      Name = "s3_list"
	SicSets     Name = "sicsets"
)

// ExpandedPrefix marks files written by an expanded-set run. Expanded runs
// prefix every per-region and combined file name with it.
const ExpandedPrefix = "expanded_"

// Finalizer post-processes a fully merged collection before it is written.
type Finalizer func(collection.Collection) (collection.Collection, error)

// Descriptor describes how one dataset is stored and combined.
type Descriptor struct {
	// Name is the dataset identifier used in file names.
	Name Name
	// Shape is the top-level container form of the dataset's files.
	Shape collection.Shape
	// Finalize, when set, runs on the merged collection before output.
	Finalize Finalizer
}

// All lists every known dataset in the order outputs are written.
var All = []Descriptor{
	{Name: Basin, Shape: collection.ShapeList},
	{Name: CyclePasses, Shape: collection.ShapeMap},
	{Name: HivdiSets, Shape: collection.ShapeList},
	{Name: MetroSets, Shape: collection.ShapeList},
	{Name: Passes, Shape: collection.ShapeMap},
	{Name: ReachNode, Shape: collection.ShapeList},
	{Name: Reaches, Shape: collection.ShapeList},
	{Name: S3List, Shape: collection.ShapeList, Finalize: dedupeUploads},
	{Name: SicSets, Shape: collection.ShapeList},
}

// index backs Lookup. A duplicate name in All is a programming error, so
// registration panics to prevent accidental overrides.
var index = make(map[Name]Descriptor, len(All))

func init() {
	for _, d := range All {
		if _, exists := index[d.Name]; exists {
			panic(fmt.Sprintf("datasets: dataset %q registered twice", d.Name))
		}
		index[d.Name] = d
	}
}

// Lookup returns the descriptor registered for the given dataset name.
func Lookup(name Name) (Descriptor, bool) {
	d, ok := index[name]
	return d, ok
}

// Names returns the dataset names in the order outputs are written.
func Names() []Name {
	names := make([]Name, len(All))
	for i, d := range All {
		names[i] = d.Name
	}
	return names
}

// PerRegionFile returns the file name a region's generator writes for this
// dataset, for example "na_basin.json".
func (n Name) PerRegionFile(region string) string {
	return region + "_" + string(n) + ".json"
}

// CombinedFile returns the global output file name for this dataset, for
// example "basin.json".
func (n Name) CombinedFile() string {
	return string(n) + ".json"
}
