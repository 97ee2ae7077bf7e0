package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex-encoded SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SceneHash hashes a scene file without its insignificant whitespace, so
// reformatting a scene keeps its cached renders. Input that is not valid
// JSON is hashed as is.
func SceneHash(scene []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, scene); err != nil {
		return Hash(scene)
	}
	return Hash(buf.Bytes())
}

// hashKey returns "prefix:" followed by the hash of parts encoded as JSON.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
