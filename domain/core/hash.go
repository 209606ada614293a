package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// SchemaHash fingerprints an ordered list of column names. Runs over
// the same schema share a hash, so records can be grouped by input
// shape.
type SchemaHash Hash

// NewSchemaHash creates a schema hash from raw bytes
func NewSchemaHash(data []byte) SchemaHash { return SchemaHash(NewHash(data)) }

// String returns the string representation
func (h SchemaHash) String() string { return Hash(h).String() }

// ComputeSchemaHash hashes column names in order. Order is part of the
// identity: the same names in a different order are a different schema.
func ComputeSchemaHash(names []string) SchemaHash {
	var data strings.Builder
	for _, name := range names {
		data.WriteString(name)
		data.WriteString("\n")
	}
	return NewSchemaHash([]byte(data.String()))
}
