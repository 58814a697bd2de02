package cache

import "strings"

const (
	GlobalKeyPrefix = "lingobyte"
)

// GenerateCacheKey generates a cache key for a given service, object type,
// and identifier.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// PerformanceDetailedKey is the cache key of a user's detailed analytics
// projection. Invalidated on every quiz submission.
func PerformanceDetailedKey(userID string) string {
	return GenerateCacheKey("analytics", "performance_detailed", userID)
}
