/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objectstore

import "context"

// Store publishes finished artifacts to a remote object store.
type Store interface {
	// Put stores body under key, replacing any existing object.
	Put(ctx context.Context, key string, body []byte) error

	// Bucket reports the bucket the store writes into.
	Bucket() string
}
