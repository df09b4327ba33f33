/*
Package objectstore defines the interface for publishing combined dataset
files to remote storage.

The interface is deliberately small; the combiner only ever writes whole
objects:

	type Store interface {
	    Put(ctx context.Context, key string, body []byte) error
	    Bucket() string
	}

Implementations:
  - s3: Amazon S3 implementation with KMS encryption at rest
  - mock: In-memory implementation for testing

A Store is bound to one bucket at construction, so callers never carry
bucket names through the combining pipeline.
*/
package objectstore
