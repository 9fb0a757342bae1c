// Package pubcache names the cached public routes and implements the
// revalidation half of the response cache: after a successful admin
// mutation the routes that display the touched entity are deleted from
// Redis, so the next public read rebuilds them.
package pubcache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Public routes subject to caching. The admin handlers revalidate these by
// name after a successful write.
const (
	RouteMenus         = "/api/public/menus"
	RouteCategories    = "/api/public/categories"
	RouteFAQs          = "/api/public/faqs"
	RouteFAQCategories = "/api/public/faq-categories"
	RouteStores        = "/api/stores"
	RouteNewMenus      = "/api/public/new-menus"
	RouteEvents        = "/api/public/events"
	RouteSessions      = "/api/public/startup-sessions"
)

// Key builds the cache key for a request. Path and query are kept readable
// (no digest) so that Revalidate can remove every variant of a route with a
// single pattern scan.
func Key(prefix, path, rawQuery string) string {
	if rawQuery == "" {
		return prefix + ":" + path
	}
	return prefix + ":" + path + "?" + rawQuery
}

// Revalidator deletes cached routes after admin writes. A nil client makes
// every call a no-op, mirroring how the cache middleware degrades.
type Revalidator struct {
	rdb    *redis.Client
	prefix string
}

// NewRevalidator builds a Revalidator over the shared Redis client. prefix
// must match the cache middleware prefix.
func NewRevalidator(rdb *redis.Client, prefix string) *Revalidator {
	return &Revalidator{rdb: rdb, prefix: prefix}
}

// Revalidate removes all cached variants (query strings included) of the
// given routes. Errors are swallowed: a failed invalidation only means a
// stale response until TTL, never a failed admin write.
func (r *Revalidator) Revalidate(ctx context.Context, routes ...string) {
	if r == nil || r.rdb == nil {
		return
	}
	for _, route := range routes {
		var cursor uint64
		for {
			keys, next, err := r.rdb.Scan(ctx, cursor, r.prefix+":"+route+"*", 100).Result()
			if err != nil {
				return
			}
			if len(keys) > 0 {
				_ = r.rdb.Del(ctx, keys...).Err()
			}
			if next == 0 {
				break
			}
			cursor = next
		}
	}
}
