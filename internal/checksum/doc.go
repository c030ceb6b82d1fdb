// Package checksum provides local-file digests for transfer integrity
// verification.
//
// A downloaded file is digested and compared against the checksum the caller
// supplied (typically published alongside the remote file). The comparison is
// case-insensitive over lowercase hex output.
//
// Three algorithms are supported: SHA-256 (default), MD5 and CRC32 (IEEE).
// MD5 and CRC32 are corruption detectors, not cryptographic protections; they
// exist because FTP servers commonly publish those digests.
//
// # Example Usage
//
//	calc, err := checksum.New("sha256")
//	digest, err := calc.DigestFile("report.csv")
//	if !checksum.Equal(digest, expected) {
//	    // integrity failure
//	}
//
// # Thread Safety
//
// Calculators are stateless and safe for concurrent use by multiple goroutines.
package checksum
