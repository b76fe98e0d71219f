package record

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainInput separates input-record hashes from any other use of SHA-256
// over canonical JSON. The version suffix allows the scheme to change.
const DomainInput = "relpredict/input/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Hash returns the content address of a record: identical inputs hash
// identically regardless of key order or Unicode normalization form.
func Hash(r Record) (string, error) {
	canonical, err := MarshalCanonical(r)
	if err != nil {
		return "", fmt.Errorf("Hash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainInput, canonical), nil
}
