/*
Package datastore defines the backend interface that data-access types built
on entitystate.Base talk to.

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, key string, entity T) error
	    List(ctx context.Context) ([]T, error)
	    Delete(ctx context.Context, key string) error
	}

entitystate itself ships no database driver. The mock subpackage provides an
in-memory implementation for tests.
*/
package datastore
