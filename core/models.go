package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID identifies a directory record by its position in storage order.
// IDs are stable for the lifetime of a loaded directory snapshot.
type ID int

// Fingerprint is a content hash of a directory source, used to decide
// whether a cached snapshot is still current.
type Fingerprint uint64

// FingerprintBytes computes a deterministic fingerprint from raw source
// bytes using BLAKE2b hashing. Identical content produces identical
// fingerprints.
func FingerprintBytes(data []byte) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// DirectoryRecord is one row of the employee directory. All text fields
// are normalized at load time: an absent cell becomes the empty string,
// never a missing field. Records are immutable after load.
type DirectoryRecord struct {
	Id         ID
	Name       string
	JobTitle   string
	Bio        string
	Skills     string
	Expertise  string
	Email      string
	Department string
}

// Candidate pairs a directory record with its lexical relevance score.
// Candidates live only for the duration of one search call; scores are
// never written back onto the record.
type Candidate struct {
	Record *DirectoryRecord
	Score  int
}

// SearchOutcome is the result of one search call: an ordered sequence of
// record IDs, plus a human-readable status message. The message explains
// an empty sequence, with one exception: the recent-employees fallback
// for an empty-intent query carries both IDs and a message.
type SearchOutcome struct {
	IDs     []ID
	Message string
}
