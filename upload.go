/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datacombine

import (
	"context"
	"log/slog"
	"time"

	dcerrors "github.com/suparena/datacombine/errors"
	"github.com/suparena/datacombine/objectstore"
)

// uploadStampLayout is the timestamp prefix format for versioned copies,
// for example "20240301T121500".
const uploadStampLayout = "20060102T150405"

// UploadFile is one finished artifact handed to the uploader.
type UploadFile struct {
	Name string
	Data []byte
}

// Uploader publishes combined files the way the downstream jobs expect
// them: every file twice, once under a run-timestamp prefix for history
// and once at the bucket root for consumers that always read the latest.
type Uploader struct {
	store  objectstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewUploader creates an Uploader writing to store.
func NewUploader(store objectstore.Store) *Uploader {
	return &Uploader{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}
}

// WithLogger routes upload logging to l
func (u *Uploader) WithLogger(l *slog.Logger) *Uploader {
	if l != nil {
		u.logger = l
	}
	return u
}

// WithNow overrides the clock used for the run-timestamp prefix
func (u *Uploader) WithNow(now func() time.Time) *Uploader {
	if now != nil {
		u.now = now
	}
	return u
}

// Upload stores every file under the stamped prefix and at the bucket
// root, in that order, and returns the object keys written. One run shares
// one stamp.
func (u *Uploader) Upload(ctx context.Context, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	stamp := u.now().Format(uploadStampLayout)
	keys := make([]string, 0, 2*len(files))
	for _, f := range files {
		for _, key := range []string{stamp + "/" + f.Name, f.Name} {
			if err := u.store.Put(ctx, key, f.Data); err != nil {
				if !dcerrors.IsUploadFailed(err) {
					err = dcerrors.NewUploadError(u.store.Bucket(), key, err)
				}
				return keys, err
			}
			keys = append(keys, key)
			u.logger.Info("uploaded combined dataset", "bucket", u.store.Bucket(), "key", key)
		}
	}
	return keys, nil
}
