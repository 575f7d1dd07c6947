package constants

import "time"

// Cache key prefixes shared by both source namespaces. The secondary
// namespace prepends its keyspace so entries never collide across sources.
const (
	CacheTweetPrefix      = "tweet:"
	CacheEngagementPrefix = "engagement:"
	CacheUserPrefix       = "user:"

	CacheTweetTTL      = 5 * time.Minute
	CacheEngagementTTL = 1 * time.Minute
	CacheUserTTL       = 30 * time.Minute
)
