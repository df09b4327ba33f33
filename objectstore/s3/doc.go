/*
Package s3 provides an Amazon S3 implementation of the object store
interface.

The Store supports:
  - Default AWS credential chain with optional static credentials
  - Server-side encryption at rest via KMS (bucket default or explicit key)
  - Content-type sniffing from object bytes with extension fallback
  - Typed upload errors carrying bucket and key context

Construction:

	store, err := s3.New(ctx, "confluence-json",
	    s3.WithRegion("us-west-2"),
	    s3.WithKMSKey("alias/confluence"),
	)

Credentials come from the environment, shared config, or instance role
unless WithStaticCredentials pins them explicitly:

	store, err := s3.New(ctx, bucket,
	    s3.WithStaticCredentials(accessKey, secretKey),
	)

Every Put is encrypted with aws:kms. Upload failures map to the pipeline's
upload error taxonomy, so callers can branch with errors.IsUploadFailed
without importing the AWS SDK.

For usage against a real bucket, see the integration tests.
*/
package s3
