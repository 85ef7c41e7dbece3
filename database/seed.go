package database

import (
	"time"

	"market-signals/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedSignal struct {
	Title         string
	ArabicTitle   string
	Summary       string
	Type          models.SignalType
	Sector        string
	Platform      string
	Priority      models.Priority
	Score         int
	Mentions      int
	Keywords      []string
	RawText       string
	SourceURL     string
	DateCollected string
}

func (s seedSignal) signal() models.Signal {
	sig := models.Signal{
		Title:         s.Title,
		Summary:       s.Summary,
		Type:          s.Type,
		Sector:        s.Sector,
		Platform:      s.Platform,
		Priority:      s.Priority,
		Score:         s.Score,
		Mentions:      s.Mentions,
		Keywords:      models.JoinKeywords(s.Keywords),
		RawText:       s.RawText,
		SourceURL:     s.SourceURL,
		DateCollected: s.DateCollected,
	}
	if s.ArabicTitle != "" {
		arabic := s.ArabicTitle
		sig.ArabicTitle = &arabic
	}
	return sig
}

// SeedCatalog returns a copy of the fixed sample signals in insertion order.
func SeedCatalog() []models.Signal {
	out := make([]models.Signal, 0, len(seedCatalog))
	for _, s := range seedCatalog {
		out = append(out, s.signal())
	}
	return out
}

// seed loads the catalog into an empty store inside tx. Lookup rows that
// already exist are left alone.
func seed(tx *gorm.DB) (int, error) {
	signals := SeedCatalog()

	platforms := []models.Platform{}
	sectors := []models.Sector{}
	seenPlatform := map[string]bool{}
	seenSector := map[string]bool{}
	for _, s := range signals {
		if !seenPlatform[s.Platform] {
			seenPlatform[s.Platform] = true
			platforms = append(platforms, models.Platform{Name: s.Platform, Active: true})
		}
		if !seenSector[s.Sector] {
			seenSector[s.Sector] = true
			sectors = append(sectors, models.Sector{Name: s.Sector})
		}
	}

	ignore := clause.OnConflict{DoNothing: true}
	if err := tx.Clauses(ignore).Create(&platforms).Error; err != nil {
		return 0, err
	}
	if err := tx.Clauses(ignore).Create(&sectors).Error; err != nil {
		return 0, err
	}

	// One row at a time keeps ids in catalog order.
	for i := range signals {
		if err := tx.Create(&signals[i]).Error; err != nil {
			return 0, err
		}
	}

	if err := upsertMetadata(tx, models.MetadataLastSeeded, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return 0, err
	}
	return len(signals), nil
}

func upsertMetadata(tx *gorm.DB, key, value string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Metadata{Key: key, Value: value}).Error
}
