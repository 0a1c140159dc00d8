package repository

import "context"

// BlobStore is the key-value persistence collaborator the task store writes
// through to. Get methods report presence separately from errors so an absent
// key is not an error. Durability guarantees are the implementation's.
type BlobStore interface {
	GetString(ctx context.Context, key string) (value string, ok bool, err error)
	SetString(ctx context.Context, key, value string) error
	GetBool(ctx context.Context, key string) (value bool, ok bool, err error)
	SetBool(ctx context.Context, key string, value bool) error
}
