package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// StoreEntry is one key of the flat key/value blob store.
type StoreEntry struct {
	Key   string         `gorm:"column:key;primaryKey;type:varchar(64)" json:"key"`
	Value datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	Timestamp
}
