/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package s3

// options collects construction settings for Store.
type options struct {
	region    string
	accessKey string
	secretKey string
	kmsKeyID  string
}

// Option configures how the store is constructed.
type Option func(*options)

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRegion pins the AWS region instead of relying on the environment.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithStaticCredentials uses fixed AWS credentials instead of the default
// provider chain.
func WithStaticCredentials(accessKey, secretKey string) Option {
	return func(o *options) {
		o.accessKey = accessKey
		o.secretKey = secretKey
	}
}

// WithKMSKey encrypts uploads with a specific KMS key instead of the
// bucket's default key.
func WithKMSKey(id string) Option {
	return func(o *options) {
		o.kmsKeyID = id
	}
}
