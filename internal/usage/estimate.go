package usage

import (
	"crypto/sha256"
	"encoding/hex"
)

// EstimateTokens approximates the token count of a piece of text.
func EstimateTokens(content string) int {
	if content == "" {
		return 0
	}
	// chars/4 is a reasonable approximation for English text
	return (len(content) + 3) / 4
}

// HashContent computes a SHA256 hash of content for deduplication.
func HashContent(content string) string {
	if content == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
