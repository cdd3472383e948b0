package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// keyVersion is bumped when the rendering of a DOT document changes, so
// older artifacts stop matching.
const keyVersion = 1

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey returns the key of the image rendered from a DOT document
// in the given format. The DOT text fully determines the image, so equal
// documents share an entry across runs and inputs.
func ArtifactKey(dot, format string) string {
	return hashKey("artifact", keyVersion, Hash([]byte(dot)), format)
}
