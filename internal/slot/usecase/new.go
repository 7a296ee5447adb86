package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
	"daily-planner/internal/slot/repository"
	"daily-planner/pkg/datemath"
	"daily-planner/pkg/gcalendar"
	pkgLog "daily-planner/pkg/log"
)

const (
	defaultCacheSize = 64
	defaultCacheTTL  = 5 * time.Minute
)

// Calendar mirrors scheduled tasks to an external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes the slot usecase. Zero values pick defaults.
type Config struct {
	CalendarID string
	CacheSize  int
	CacheTTL   time.Duration
	// TimeModes overrides the parser time mode per request source.
	TimeModes map[model.Source]planner.TimeMode
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	parser     *planner.Parser
	parsers    map[model.Source]*planner.Parser
	dates      *datemath.Parser
	calendar   Calendar
	calendarID string
	days       *expirable.LRU[string, slot.DayView]
	now        func() time.Time
}

// New creates a new slot UseCase. calendar may be nil to disable the mirror.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *planner.Parser,
	dates *datemath.Parser,
	calendar Calendar,
	cfg Config,
) slot.UseCase {
	return newUseCase(l, repo, parser, dates, calendar, cfg)
}

func newUseCase(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *planner.Parser,
	dates *datemath.Parser,
	calendar Calendar,
	cfg Config,
) *implUseCase {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	parsers := make(map[model.Source]*planner.Parser, len(cfg.TimeModes))
	for source, mode := range cfg.TimeModes {
		if mode != parser.Mode() {
			parsers[source] = planner.New(dates, mode)
		}
	}

	return &implUseCase{
		l:          l,
		repo:       repo,
		parser:     parser,
		parsers:    parsers,
		dates:      dates,
		calendar:   calendar,
		calendarID: cfg.CalendarID,
		days:       expirable.NewLRU[string, slot.DayView](size, nil, ttl),
		now:        time.Now,
	}
}
