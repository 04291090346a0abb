package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateGameID generates a random identifier for one self-play game
func GenerateGameID() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate game ID: %v", err)
	}
	return hex.EncodeToString(bytes), nil
}
