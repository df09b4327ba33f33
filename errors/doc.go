/*
Package errors provides semantic error types for the data combining pipeline.

The package defines common failure scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrMalformedInput   = errors.New("malformed input file")
	    ErrBadManifest      = errors.New("bad region manifest")
	    ErrNoRegions        = errors.New("no regions found")
	    ErrUnwritableOutput = errors.New("unwritable output")
	    ErrUploadFailed     = errors.New("upload failed")
	)

Usage:

	// Check error type
	summary, err := combiner.Run(ctx)
	if err != nil {
	    if errors.IsMalformedInput(err) {
	        // A per-region file held invalid JSON; nothing was written.
	        return fmt.Errorf("regenerate the inputs: %w", err)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewMalformedInputError("na_basin.json", cause)
	err := errors.NewManifestError("continent.json", cause)
	err := errors.NewUploadError("confluence-json", "reaches.json", cause)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
