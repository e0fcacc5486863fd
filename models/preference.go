package models

// Preference is a per-user key/value record replacing the client-local
// storage of the original app (last view index, session-lite cache).
// No schema versioning.
type Preference struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID uint   `gorm:"uniqueIndex:idx_user_key;not null" json:"-"`
	Key    string `gorm:"uniqueIndex:idx_user_key;size:64;not null" json:"key"`
	Value  string `gorm:"type:text" json:"value"`
}
