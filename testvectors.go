package randgen

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector is a single ChaCha20 known-answer case: the keystream produced
// from a key, nonce and starting block counter.
type TestVector struct {
	Name      string `json:"name"`
	Key       string `json:"key"`       // Hex-encoded 32-byte key
	Nonce     uint64 `json:"nonce"`
	Counter   uint64 `json:"counter"`
	Keystream string `json:"keystream"` // Hex-encoded, a whole number of blocks
	Source    string `json:"source,omitempty"`
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
//
// This is used internally for testing but exported for external validation
// tools.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetKey returns the decoded key.
func (tv *TestVector) GetKey() ([]byte, error) {
	key, err := hex.DecodeString(tv.Key)
	if err != nil {
		return nil, fmt.Errorf("invalid key hex: %w", err)
	}
	if len(key) != ChaCha20KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", ChaCha20KeySize, len(key))
	}
	return key, nil
}

// GetKeystream returns the decoded expected keystream.
func (tv *TestVector) GetKeystream() ([]byte, error) {
	ks, err := hex.DecodeString(tv.Keystream)
	if err != nil {
		return nil, fmt.Errorf("invalid keystream hex: %w", err)
	}
	if len(ks) == 0 || len(ks)%ChaCha20BlockSize != 0 {
		return nil, fmt.Errorf("keystream must be a non-zero multiple of %d bytes, got %d",
			ChaCha20BlockSize, len(ks))
	}
	return ks, nil
}

// Generator builds the ChaCha20 generator the vector describes.
func (tv *TestVector) Generator() (*ChaCha20, error) {
	key, err := tv.GetKey()
	if err != nil {
		return nil, err
	}
	return ChaCha20FromParts([]byte(ChaCha20Constant), key, tv.Nonce, tv.Counter)
}
