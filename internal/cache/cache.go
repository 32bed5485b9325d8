package cache

import (
	"fmt"
	"strings"
	"time"
)

// Cache defines the interface for caching operations
type Cache interface {
	// Get retrieves a value from the cache
	// Returns the value and a boolean indicating whether the key was found
	Get(key string) (interface{}, bool)

	// Set adds a value to the cache with the specified expiration
	Set(key string, value interface{}, expiration time.Duration)

	// Delete removes a key from the cache
	Delete(key string)

	// Flush removes all items from the cache
	Flush()

	// ItemCount returns the number of live entries
	ItemCount() int
}

// Predefined cache key prefixes
const (
	PrefixQuote = "quote:v1:"
)

// GenerateKey creates a cache key from a prefix and a set of parameters.
// It joins all parameters with a colon and appends them to the prefix.
func GenerateKey(prefix string, params ...interface{}) string {
	parts := make([]string, len(params)+1)
	parts[0] = prefix

	for i, param := range params {
		parts[i+1] = fmt.Sprintf("%v", param)
	}

	return strings.Join(parts, ":")
}
