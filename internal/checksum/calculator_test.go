package checksum

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestDigestFile_KnownVectors(t *testing.T) {
	// Digests of "hello world" are standard published test vectors
	tests := []struct {
		algorithm string
		expected  string
	}{
		{AlgorithmSHA256, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{AlgorithmMD5, "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{AlgorithmCRC32, "0d4a1185"},
	}

	path := writeTestFile(t, "hello world")

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			calc, err := New(tt.algorithm)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tt.algorithm, err)
			}

			digest, err := calc.DigestFile(path)
			if err != nil {
				t.Fatalf("DigestFile failed: %v", err)
			}
			if digest != tt.expected {
				t.Errorf("DigestFile = %q, want %q", digest, tt.expected)
			}
		})
	}
}

func TestDigestFile_EmptyFile(t *testing.T) {
	path := writeTestFile(t, "")

	calc, err := New(AlgorithmSHA256)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	digest, err := calc.DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile failed: %v", err)
	}
	// SHA-256 of the empty string
	if digest != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("unexpected digest of empty file: %q", digest)
	}
}

func TestDigestFile_MissingFile(t *testing.T) {
	calc, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := calc.DigestFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestNew_DefaultsAndErrors(t *testing.T) {
	calc, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") failed: %v", err)
	}
	if calc.Algorithm() != AlgorithmSHA256 {
		t.Errorf("default algorithm = %q, want %q", calc.Algorithm(), AlgorithmSHA256)
	}

	if _, err := New("sha1"); err == nil {
		t.Error("Expected error for unsupported algorithm")
	}

	// Names are case-insensitive
	calc, err = New("SHA256")
	if err != nil {
		t.Fatalf("New(\"SHA256\") failed: %v", err)
	}
	if calc.Algorithm() != AlgorithmSHA256 {
		t.Errorf("Algorithm = %q, want %q", calc.Algorithm(), AlgorithmSHA256)
	}
}

func TestEqual_CaseInsensitive(t *testing.T) {
	if !Equal("ABCDEF01", "abcdef01") {
		t.Error("Expected case-insensitive digest comparison")
	}
	if Equal("abcdef01", "abcdef02") {
		t.Error("Expected mismatched digests to compare unequal")
	}
}
