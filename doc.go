/*
Package datacombine merges per-region dataset files into global files.

The upstream generators run once per region and leave their output side by
side in one directory: na_basin.json, eu_basin.json, na_reaches.json, and
so on across nine datasets. Downstream jobs want one file per dataset, so
the combiner folds every region's contribution into basin.json,
reaches.json, and friends.

The merge is shape-aware and content-blind:
  - Array datasets concatenate, preserving region order
  - Object datasets union their keys, last region winning a collision
  - Record bytes pass through untouched

A missing per-region file simply contributes nothing; a malformed one
aborts the run before any output is written.

Basic Usage:

	fsys := billy.NewOSFS("/")
	c := datacombine.New("/mnt/data/continent.json", "/mnt/data",
	    datacombine.WithFilesystem(fsys),
	    datacombine.WithLogger(logger),
	)

	summary, err := c.Run(ctx)
	if err != nil {
	    // Nothing was deleted; rerunning after a fix is safe.
	    return err
	}
	log.Printf("combined %d datasets", len(summary.Written))

Optional behaviors hang off the same options: WithObjectStore publishes
every combined file to S3 under a timestamped prefix and at the bucket
root, WithDeleteInputs removes the per-region files after a fully
successful run, and WithExpanded switches to the expanded-set file names.

For more information, see the documentation at https://github.com/suparena/datacombine
*/
package datacombine
