package database

import (
	"context"
	"errors"
	"strings"

	"market-signals/models"

	"gorm.io/gorm"
)

const rankOrder = "score DESC, id ASC"

func (s *Store) ListAll(ctx context.Context, limit int) ([]models.Signal, error) {
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	signals := []models.Signal{}
	err := s.db.WithContext(ctx).Order(rankOrder).Limit(limit).Find(&signals).Error
	return signals, storeErr("list signals", err)
}

func (s *Store) ListBySector(ctx context.Context, sector string) ([]models.Signal, error) {
	signals := []models.Signal{}
	err := s.db.WithContext(ctx).Where("sector = ?", sector).Order(rankOrder).Find(&signals).Error
	return signals, storeErr("list signals by sector", err)
}

func (s *Store) ListByPlatform(ctx context.Context, platform string) ([]models.Signal, error) {
	signals := []models.Signal{}
	err := s.db.WithContext(ctx).Where("platform = ?", platform).Order(rankOrder).Find(&signals).Error
	return signals, storeErr("list signals by platform", err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches query as a substring of title, summary, keywords or
// arabic_title. An empty query matches every row.
func (s *Store) Search(ctx context.Context, query string) ([]models.Signal, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"
	signals := []models.Signal{}
	err := s.db.WithContext(ctx).
		Where(`title LIKE ? ESCAPE '\' OR summary LIKE ? ESCAPE '\' OR keywords LIKE ? ESCAPE '\' OR arabic_title LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern).
		Order(rankOrder).
		Find(&signals).Error
	return signals, storeErr("search signals", err)
}

func (s *Store) Stats(ctx context.Context) (*models.SignalStats, error) {
	db := s.db.WithContext(ctx)
	stats := &models.SignalStats{ByType: map[string]int64{}}

	if err := db.Model(&models.Signal{}).Count(&stats.Total).Error; err != nil {
		return nil, storeErr("count signals", err)
	}
	if err := db.Model(&models.Signal{}).Where("priority = ?", models.PriorityHigh).Count(&stats.HighPriority).Error; err != nil {
		return nil, storeErr("count high priority", err)
	}
	if err := db.Model(&models.Signal{}).Distinct("sector").Count(&stats.Sectors).Error; err != nil {
		return nil, storeErr("count sectors", err)
	}
	if err := db.Model(&models.Signal{}).Distinct("platform").Count(&stats.Platforms).Error; err != nil {
		return nil, storeErr("count platforms", err)
	}

	var rows []struct {
		Type  string
		Count int64
	}
	if err := db.Model(&models.Signal{}).Select("type, COUNT(*) AS count").Group("type").Scan(&rows).Error; err != nil {
		return nil, storeErr("count by type", err)
	}
	for _, r := range rows {
		stats.ByType[r.Type] = r.Count
	}
	return stats, nil
}

func (s *Store) Platforms(ctx context.Context) ([]models.Platform, error) {
	platforms := []models.Platform{}
	err := s.db.WithContext(ctx).Order("name ASC").Find(&platforms).Error
	return platforms, storeErr("list platforms", err)
}

func (s *Store) Sectors(ctx context.Context) ([]models.Sector, error) {
	sectors := []models.Sector{}
	err := s.db.WithContext(ctx).Order("name ASC").Find(&sectors).Error
	return sectors, storeErr("list sectors", err)
}

// Metadata returns the value stored under key, or "" when it is unset.
func (s *Store) Metadata(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	var m models.Metadata
	err := s.db.WithContext(ctx).Where(&models.Metadata{Key: key}).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", storeErr("read metadata", err)
	}
	return m.Value, nil
}

// SetMetadata overwrites the value stored under key.
func (s *Store) SetMetadata(ctx context.Context, key, value string) error {
	return storeErr("write metadata", upsertMetadata(s.db.WithContext(ctx), key, value))
}
