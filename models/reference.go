package models

import "time"

// Platform is a lookup entry for the channel a signal was collected from.
type Platform struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active" gorm:"default:true"`
}

func (Platform) TableName() string {
	return "platforms"
}

// Sector is a lookup entry for an industry category.
type Sector struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description,omitempty"`
}

func (Sector) TableName() string {
	return "sectors"
}

// Metadata is a key/value fact about the store, overwritten by key.
type Metadata struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Metadata) TableName() string {
	return "metadata"
}

const MetadataLastSeeded = "last_seeded"
