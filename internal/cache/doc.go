// Package cache provides the in-memory TTL store used by the directory client.
//
// Keys are plain strings built from the request shape ("station/<id>",
// "<tagType>/<slug>/<page>", "favorites"). Entries expire after their TTL
// and are then reported as misses; there is no background eviction.
package cache
