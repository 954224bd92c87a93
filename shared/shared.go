package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins key segments into a single namespaced cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}
