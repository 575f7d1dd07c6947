package sources

import (
	"context"
	"errors"

	"twitter-gateway/models/responses"
)

// ErrNotFound is returned when the backing library resolved the request but
// the tweet or user does not exist (or is outside the scraped window).
var ErrNotFound = errors.New("not found")

// Source is one backing scraping library. The gateway serves the same
// endpoints once per source, each under its own namespace.
type Source interface {
	// Name identifies the source in responses and cache keyspaces.
	Name() string

	// Ready reports whether the underlying client was initialized.
	Ready() bool

	// LookupTweet resolves a tweet by ID from the author's recent timeline.
	// The author fields beyond the handle are filled only when
	// includeUserInfo is set.
	LookupTweet(ctx context.Context, tweetID string, handle string, includeUserInfo bool) (*responses.Tweet, error)

	// LookupUser resolves a user profile by handle.
	LookupUser(ctx context.Context, handle string) (*responses.UserInfo, error)
}
