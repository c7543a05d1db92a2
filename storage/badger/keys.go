package badger

import "fmt"

// Key prefixes for different data types
const (
	vectorCachePrefix = "veccache"
)

// makeVectorCacheKey generates a key for a cached vector by content hash.
func makeVectorCacheKey(key string) []byte {
	return []byte(fmt.Sprintf("%s:%s", vectorCachePrefix, key))
}
