package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// TraceKey builds the cache key for a trace event log. The pegs are passed
// as ordinals so the key is independent of label formatting.
func TraceKey(n, src, dst, aux int) string {
	return hashKey("trace", n, src, dst, aux)
}

// MovesKey builds the cache key for a solved move sequence.
func MovesKey(n, src, dst, aux int) string {
	return hashKey("moves", n, src, dst, aux)
}

// ArtifactKeyOpts captures every render option that affects artifact bytes.
// Two renders with equal options and equal puzzle parameters are
// byte-identical, so they may share a cache slot.
type ArtifactKeyOpts struct {
	VizType   string  // "board" or "tree"
	Format    string  // "svg", "png", "dot"
	Width     float64 // board frame width
	Height    float64 // board frame height
	Step      int     // moves applied before rendering the board
	Highlight int     // trace timestamp highlighted in the tree, -1 for none
}

// ArtifactKey builds the cache key for a rendered artifact.
func ArtifactKey(n, src, dst, aux int, opts ArtifactKeyOpts) string {
	return hashKey("artifact", n, src, dst, aux, opts)
}

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
