/*
Package manifest tracks which regions contribute to a combining run.

The run directory carries a small JSON manifest, continent.json by
convention, listing the region codes whose files should be merged. Entries
come in two forms, and both may appear in one manifest:

	[
	    "eu",
	    {"na": [7, 8, 9]}
	]

The object form also records the leading basin digits the region covers.
Duplicate region codes keep the first entry.

When no manifest exists the set can be rebuilt with Discover, which probes
the data directory for per-region reaches files, the one dataset every
generator run produces:

	regions, err := manifest.Discover(fsys, dataDir, false)
	...
	err = manifest.Write(fsys, manifestPath, regions)
*/
package manifest
