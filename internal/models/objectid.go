package models

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ObjectID is a 12-byte object identifier rendered as 24 hex characters,
// compatible with the identifiers the upstream game server stores.
type ObjectID [12]byte

// NewObjectID generates a fresh identifier from the current unix timestamp
// and UUID-derived entropy.
func NewObjectID() ObjectID {
	var id ObjectID
	binary.BigEndian.PutUint32(id[:4], uint32(time.Now().Unix()))
	entropy := uuid.New()
	copy(id[4:], entropy[:8])
	return id
}

// ParseObjectID decodes a 24-character hex string into an ObjectID.
func ParseObjectID(s string) (ObjectID, error) {
	var id ObjectID
	if len(s) != 24 {
		return id, fmt.Errorf("invalid object id length %d", len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid object id: %w", err)
	}
	copy(id[:], raw)
	return id, nil
}

// IsZero reports whether the identifier is the unset sentinel.
func (id ObjectID) IsZero() bool {
	return id == ObjectID{}
}

func (id ObjectID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalJSON renders the identifier as a bare hex string.
func (id ObjectID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON accepts either a bare hex string or an extended-JSON object
// with an "$oid" string field. A JSON null leaves the zero sentinel so the
// reconciler can allocate later; any other unparseable value silently becomes
// a freshly generated identifier. Decoding never fails.
func (id *ObjectID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ObjectID{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var wrapper struct {
			OID *string `json:"$oid"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || wrapper.OID == nil {
			*id = NewObjectID()
			return nil
		}
		s = *wrapper.OID
	}

	parsed, err := ParseObjectID(s)
	if err != nil {
		*id = NewObjectID()
		return nil
	}
	*id = parsed
	return nil
}

// Value implements [driver.Valuer] so the identifier persists as hex text.
func (id ObjectID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements [sql.Scanner] for reading identifiers back from the store.
func (id *ObjectID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ObjectID{}
		return nil
	case string:
		parsed, err := ParseObjectID(v)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		parsed, err := ParseObjectID(string(v))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ObjectID", src)
	}
}
