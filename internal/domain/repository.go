package domain

import "context"

// FeedClient fetches the external analytics feed. The caller does not
// retry; a failed fetch discards the prior working set.
type FeedClient interface {
	FetchFeed(ctx context.Context) ([]RawAdRecord, error)
}

// UserRepository looks up dashboard accounts for login.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
}
