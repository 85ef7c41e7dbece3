package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type SignalType string

const (
	TypeTrending    SignalType = "trending"
	TypePainPoint   SignalType = "pain_point"
	TypeOpportunity SignalType = "opportunity"
	TypeMention     SignalType = "mention"
)

// SignalTypes lists every accepted signal type in display order.
var SignalTypes = []SignalType{TypeTrending, TypePainPoint, TypeOpportunity, TypeMention}

func (t SignalType) Valid() bool {
	switch t {
	case TypeTrending, TypePainPoint, TypeOpportunity, TypeMention:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// KeywordDelimiter separates keywords inside the stored blob.
const KeywordDelimiter = ","

// DefaultLimit caps the "all" listing when no other limit is configured.
const DefaultLimit = 200

// Signal is a single market observation as stored in the signals table.
type Signal struct {
	ID            uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string     `json:"title" gorm:"not null"`
	ArabicTitle   *string    `json:"arabic_title"`
	Summary       string     `json:"summary"`
	Type          SignalType `json:"type" gorm:"not null;check:type IN ('trending','pain_point','opportunity','mention')"`
	Sector        string     `json:"sector" gorm:"index"`
	Platform      string     `json:"platform" gorm:"index"`
	Priority      Priority   `json:"priority" gorm:"not null;check:priority IN ('High','Medium','Low')"`
	Score         int        `json:"score" gorm:"index"`
	Mentions      int        `json:"mentions" gorm:"not null;default:0"`
	Keywords      string     `json:"keywords"`
	RawText       string     `json:"raw_text"`
	SourceURL     string     `json:"source_url"`
	DateCollected string     `json:"date_collected"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime;<-:create"`
}

func (Signal) TableName() string {
	return "signals"
}

// Validate checks the enumerated columns before a row reaches the database.
func (s *Signal) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("signal title is required")
	}
	if !s.Type.Valid() {
		return fmt.Errorf("invalid signal type %q", s.Type)
	}
	if !s.Priority.Valid() {
		return fmt.Errorf("invalid signal priority %q", s.Priority)
	}
	return nil
}

func (s *Signal) BeforeCreate(tx *gorm.DB) error {
	return s.Validate()
}

// SignalView is the external representation of a Signal: keywords are
// decoded into a list.
type SignalView struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	ArabicTitle   *string    `json:"arabic_title"`
	Summary       string     `json:"summary"`
	Type          SignalType `json:"type"`
	Sector        string     `json:"sector"`
	Platform      string     `json:"platform"`
	Priority      Priority   `json:"priority"`
	Score         int        `json:"score"`
	Mentions      int        `json:"mentions"`
	Keywords      []string   `json:"keywords"`
	RawText       string     `json:"raw_text"`
	SourceURL     string     `json:"source_url"`
	DateCollected string     `json:"date_collected"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (s *Signal) View() SignalView {
	return SignalView{
		ID:            s.ID,
		Title:         s.Title,
		ArabicTitle:   s.ArabicTitle,
		Summary:       s.Summary,
		Type:          s.Type,
		Sector:        s.Sector,
		Platform:      s.Platform,
		Priority:      s.Priority,
		Score:         s.Score,
		Mentions:      s.Mentions,
		Keywords:      SplitKeywords(s.Keywords),
		RawText:       s.RawText,
		SourceURL:     s.SourceURL,
		DateCollected: s.DateCollected,
		CreatedAt:     s.CreatedAt,
	}
}

// SplitKeywords decodes a keyword blob into trimmed, non-empty entries.
// The result is never nil.
func SplitKeywords(blob string) []string {
	out := []string{}
	for _, k := range strings.Split(blob, KeywordDelimiter) {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// JoinKeywords encodes keywords into the stored blob. Values must not
// contain KeywordDelimiter.
func JoinKeywords(keywords []string) string {
	kept := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			kept = append(kept, k)
		}
	}
	return strings.Join(kept, KeywordDelimiter)
}

// SignalStats aggregates the signals table.
type SignalStats struct {
	Total        int64            `json:"total"`
	HighPriority int64            `json:"high_priority"`
	Sectors      int64            `json:"sectors"`
	Platforms    int64            `json:"platforms"`
	ByType       map[string]int64 `json:"by_type"`
}
