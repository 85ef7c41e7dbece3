package services

import (
	"context"
	"fmt"
	"time"

	"market-signals/logger"
	"market-signals/models"
)

// Action is one of the read operations exposed by the API.
type Action int

const (
	ActionAll Action = iota
	ActionStats
	ActionSector
	ActionPlatform
	ActionSearch
)

var actionNames = [...]string{
	ActionAll:      "all",
	ActionStats:    "stats",
	ActionSector:   "sector",
	ActionPlatform: "platform",
	ActionSearch:   "search",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps an action name to its Action. Names are case-sensitive.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// ValidActions lists the accepted action names in dispatch order.
func ValidActions() []string {
	out := make([]string, len(actionNames))
	copy(out, actionNames[:])
	return out
}

// SignalStore is the read surface the service needs from storage.
type SignalStore interface {
	ListAll(ctx context.Context, limit int) ([]models.Signal, error)
	ListBySector(ctx context.Context, sector string) ([]models.Signal, error)
	ListByPlatform(ctx context.Context, platform string) ([]models.Signal, error)
	Search(ctx context.Context, query string) ([]models.Signal, error)
	Stats(ctx context.Context) (*models.SignalStats, error)
}

// Request carries an action name and its parameters. Unused parameters
// are ignored.
type Request struct {
	Action   string `form:"action" json:"action"`
	Sector   string `form:"sector" json:"sector"`
	Platform string `form:"platform" json:"platform"`
	Query    string `form:"q" json:"q"`
}

type AllResult struct {
	Signals   []models.SignalView `json:"signals"`
	Count     int                 `json:"count"`
	Timestamp string              `json:"timestamp"`
}

type SectorResult struct {
	Signals []models.SignalView `json:"signals"`
	Sector  string              `json:"sector"`
	Count   int                 `json:"count"`
}

type PlatformResult struct {
	Signals  []models.SignalView `json:"signals"`
	Platform string              `json:"platform"`
	Count    int                 `json:"count"`
}

type SearchResult struct {
	Signals []models.SignalView `json:"signals"`
	Query   string              `json:"query"`
	Count   int                 `json:"count"`
}

// UnknownActionResult is returned in place of a result when the action
// name is not recognised.
type UnknownActionResult struct {
	Error        string   `json:"error"`
	ValidActions []string `json:"valid_actions"`
}

const unknownActionMessage = "Unknown action"

type QueryService struct {
	store SignalStore
	log   *logger.Logger
	limit int
	now   func() time.Time
}

type Option func(*QueryService)

// WithLimit sets the row cap for the "all" action.
func WithLimit(limit int) Option {
	return func(s *QueryService) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithClock replaces time.Now for the "all" timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *QueryService) { s.now = now }
}

func NewQueryService(store SignalStore, log *logger.Logger, opts ...Option) *QueryService {
	if log == nil {
		log = logger.Nop()
	}
	s := &QueryService{store: store, log: log, limit: models.DefaultLimit, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs req and returns the JSON-ready result. An empty action
// means "all".
func (s *QueryService) Execute(ctx context.Context, req Request) (any, error) {
	name := req.Action
	if name == "" {
		name = ActionAll.String()
	}
	action, ok := ParseAction(name)
	if !ok {
		s.log.Debug("Unknown action requested", "action", name)
		return UnknownActionResult{Error: unknownActionMessage, ValidActions: ValidActions()}, nil
	}

	switch action {
	case ActionAll:
		rows, err := s.store.ListAll(ctx, s.limit)
		if err != nil {
			return nil, fmt.Errorf("list all signals: %w", err)
		}
		views := toViews(rows)
		return AllResult{Signals: views, Count: len(views), Timestamp: s.now().Format(time.RFC3339)}, nil

	case ActionStats:
		stats, err := s.store.Stats(ctx)
		if err != nil {
			return nil, fmt.Errorf("signal stats: %w", err)
		}
		if stats.ByType == nil {
			stats.ByType = map[string]int64{}
		}
		return stats, nil

	case ActionSector:
		rows, err := s.store.ListBySector(ctx, req.Sector)
		if err != nil {
			return nil, fmt.Errorf("list signals for sector %q: %w", req.Sector, err)
		}
		views := toViews(rows)
		return SectorResult{Signals: views, Sector: req.Sector, Count: len(views)}, nil

	case ActionPlatform:
		rows, err := s.store.ListByPlatform(ctx, req.Platform)
		if err != nil {
			return nil, fmt.Errorf("list signals for platform %q: %w", req.Platform, err)
		}
		views := toViews(rows)
		return PlatformResult{Signals: views, Platform: req.Platform, Count: len(views)}, nil

	case ActionSearch:
		rows, err := s.store.Search(ctx, req.Query)
		if err != nil {
			return nil, fmt.Errorf("search signals for %q: %w", req.Query, err)
		}
		views := toViews(rows)
		return SearchResult{Signals: views, Query: req.Query, Count: len(views)}, nil
	}

	return nil, fmt.Errorf("unhandled action %s", action)
}

func toViews(rows []models.Signal) []models.SignalView {
	views := make([]models.SignalView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].View())
	}
	return views
}
