// Package history records prediction events and reads them back per user.
package history

import (
	"context"

	"github.com/krishkalaria12/plantdoc-serve/database"
	"github.com/krishkalaria12/plantdoc-serve/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewService(db *gorm.DB, log zerolog.Logger) *Service {
	return &Service{db: db, log: log}
}

// Record inserts entry without checking that the user or the predicted
// class exist, then returns every entry stored under (user_id, date).
// A reused local_url or (user_id, date) pair fails as a storage error and
// leaves the store unchanged.
func (s *Service) Record(ctx context.Context, entry models.History) ([]models.History, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, database.Wrap("create history", err)
	}

	s.log.Debug().
		Uint("user_id", entry.UserID).
		Int("predicted_class_id", entry.PredictedClassID).
		Str("date", entry.Date).
		Msg("history recorded")

	recorded := make([]models.History, 0, 1)
	err = s.db.WithContext(ctx).
		Where(map[string]any{"user_id": entry.UserID, "date": entry.Date}).
		Find(&recorded).Error
	if err != nil {
		return nil, database.Wrap("read recorded history", err)
	}

	return recorded, nil
}

// ForUser returns the entries owned by userID ordered by date.
func (s *Service) ForUser(ctx context.Context, userID uint) ([]models.History, error) {
	entries := make([]models.History, 0)
	err := s.db.WithContext(ctx).
		Where(map[string]any{"user_id": userID}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}}).
		Find(&entries).Error
	if err != nil {
		return nil, database.Wrap("list history", err)
	}
	return entries, nil
}
