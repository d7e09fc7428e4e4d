// Package catalog serves the plant and disease reference tables and loads
// them from YAML seed files.
package catalog

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

// ListPlants returns every plant ordered by id.
func (s *Service) ListPlants(ctx context.Context) ([]models.Plant, error) {
	plants := make([]models.Plant, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&plants).Error; err != nil {
		return nil, database.Wrap("list plants", err)
	}
	return plants, nil
}

// ListDiseases returns every disease ordered by id. Diseases whose plant_id
// has no matching plant are returned as stored.
func (s *Service) ListDiseases(ctx context.Context) ([]models.Disease, error) {
	diseases := make([]models.Disease, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&diseases).Error; err != nil {
		return nil, database.Wrap("list diseases", err)
	}
	return diseases, nil
}

// Seed upserts every plant and disease of c by primary key in one
// transaction. Running it twice with the same catalog leaves the tables
// unchanged.
func (s *Service) Seed(ctx context.Context, c *Catalog) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(c.Plants) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&c.Plants).Error; err != nil {
				return err
			}
		}
		if len(c.Diseases) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&c.Diseases).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return database.Wrap("seed catalog", err)
	}

	s.log.Info().
		Int("plants", len(c.Plants)).
		Int("diseases", len(c.Diseases)).
		Msg("catalog seeded")
	return nil
}
