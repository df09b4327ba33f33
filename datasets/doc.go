/*
Package datasets names the per-region dataset files the combiner merges.

The upstream generators emit a fixed set of nine datasets for every region.
Each dataset is described by a Descriptor carrying its file-name stem, its
container shape, and an optional finalizer that runs on the merged result:

	for _, d := range datasets.All {
	    name := d.Name.PerRegionFile("na") // "na_basin.json"
	    ...
	}

Dataset registration is closed: the set lives in All, and a duplicate name
panics at init to surface the programming error immediately.

The s3_list dataset carries its own finalizer. Its entries name shapefiles
uploaded by the generators, and a reprocessed shapefile appears once per
attempt with an incrementing counter suffix. The finalizer keeps only the
highest attempt for each shapefile so downstream jobs never fetch stale
output.
*/
package datasets
