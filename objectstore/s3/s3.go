/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/gabriel-vasile/mimetype"

	dcerrors "github.com/suparena/datacombine/errors"
)

// Store implements objectstore.Store backed by one S3 bucket. Uploads are
// encrypted at rest with KMS, using the bucket's default key unless a key
// is configured.
type Store struct {
	client   *sdk.Client
	bucket   string
	kmsKeyID string
}

// New initializes an S3-backed store for the given bucket. Credentials and
// region come from the default AWS provider chain unless overridden through
// options.
func New(ctx context.Context, bucket string, opts ...Option) (*Store, error) {
	o := applyOptions(opts)

	var loadOpts []func(*config.LoadOptions) error
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.accessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.accessKey, o.secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Store{
		client:   sdk.NewFromConfig(cfg),
		bucket:   bucket,
		kmsKeyID: o.kmsKeyID,
	}, nil
}

// Put uploads body under key with a sniffed content type.
func (s *Store) Put(ctx context.Context, key string, body []byte) error {
	input := &sdk.PutObjectInput{
		Bucket:               aws.String(s.bucket),
		Key:                  aws.String(key),
		Body:                 bytes.NewReader(body),
		ContentType:          aws.String(detectContentType(key, body)),
		ServerSideEncryption: types.ServerSideEncryptionAwsKms,
	}
	if s.kmsKeyID != "" {
		input.SSEKMSKeyId = aws.String(s.kmsKeyID)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return mapUploadError(s.bucket, key, err)
	}
	return nil
}

// Bucket reports the bucket the store writes into.
func (s *Store) Bucket() string { return s.bucket }

// mapUploadError normalizes SDK failures into the pipeline's upload error.
func mapUploadError(bucket, key string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return dcerrors.NewUploadError(bucket, key, fmt.Errorf("bucket does not exist: %w", err))
		case "AccessDenied":
			return dcerrors.NewUploadError(bucket, key, fmt.Errorf("access denied: %w", err))
		}
	}
	return dcerrors.NewUploadError(bucket, key, err)
}

// detectContentType sniffs the upload's MIME type from its bytes, falling
// back to the key's extension.
func detectContentType(key string, data []byte) string {
	if len(data) > 0 {
		if mtype := mimetype.Detect(data); mtype.String() != "application/octet-stream" {
			return mtype.String()
		}
	}
	if ext := filepath.Ext(key); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return "application/octet-stream"
}
