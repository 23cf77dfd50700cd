/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// DataStore is the backend a data-access type reads from and writes to.
type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, key string, entity T) error

	List(ctx context.Context) ([]T, error)

	Delete(ctx context.Context, key string) error
}
