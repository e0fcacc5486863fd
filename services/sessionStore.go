package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comanda-api/models"
)

// SessionStore keeps the per-user client state the original app held in
// browser storage (last view index and friends). Explicitly constructed
// and injected instead of living as ambient module state.
type SessionStore interface {
	Load(userID uint) (map[string]string, error)
	Save(userID uint, key, value string) error
	Clear(userID uint) error
}

type sessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) SessionStore {
	return &sessionStore{db: db}
}

func (s *sessionStore) Load(userID uint) (map[string]string, error) {
	var prefs []models.Preference
	if err := s.db.Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(prefs))
	for _, p := range prefs {
		out[p.Key] = p.Value
	}
	return out, nil
}

func (s *sessionStore) Save(userID uint, key, value string) error {
	pref := models.Preference{UserID: userID, Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&pref).Error
}

func (s *sessionStore) Clear(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.Preference{}).Error
}
