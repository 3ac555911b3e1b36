package models

import "github.com/google/uuid"

// IDMapping links an integer id from the legacy schema to its UUID.
type IDMapping struct {
	LegacyID int64     `json:"legacy_id"`
	UUID     uuid.UUID `json:"uuid"`
}
