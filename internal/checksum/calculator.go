package checksum

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"
	"strings"
)

// Calculator is an interface for computing file checksums.
// This abstraction allows different digest algorithms behind one contract.
type Calculator interface {
	// DigestFile computes the hex-encoded digest of the file's content.
	DigestFile(path string) (string, error)

	// Algorithm reports the algorithm's canonical name.
	Algorithm() string
}

// Supported algorithm names.
const (
	AlgorithmSHA256 = "sha256"
	AlgorithmMD5    = "md5"
	AlgorithmCRC32  = "crc32"
)

// hashCalculator streams file content through a hash.Hash constructor.
// It is stateless and safe for concurrent use by multiple goroutines.
type hashCalculator struct {
	algorithm string
	newHash   func() hash.Hash
}

// New creates a Calculator for the named algorithm: "sha256", "md5" or
// "crc32". The empty string selects SHA-256.
func New(algorithm string) (Calculator, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmSHA256:
		return &hashCalculator{algorithm: AlgorithmSHA256, newHash: sha256.New}, nil
	case AlgorithmMD5:
		return &hashCalculator{algorithm: AlgorithmMD5, newHash: md5.New}, nil
	case AlgorithmCRC32:
		return &hashCalculator{algorithm: AlgorithmCRC32, newHash: func() hash.Hash { return crc32.NewIEEE() }}, nil
	default:
		return nil, fmt.Errorf("unknown checksum algorithm %q", algorithm)
	}
}

// DigestFile streams the file through the hash, so large downloads never
// need to fit in memory. The result is lowercase hex.
func (c *hashCalculator) DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for digest: %w", path, err)
	}
	defer f.Close()

	h := c.newHash()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to digest %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Algorithm reports the algorithm's canonical name.
func (c *hashCalculator) Algorithm() string {
	return c.algorithm
}

// Equal compares two hex digests case-insensitively.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}
