package usecase

import (
	"strings"
	"time"

	"daily-planner/internal/journal"
	"daily-planner/internal/journal/repository"
	pkgLog "daily-planner/pkg/log"
)

// maxReflectionBytes bounds one stored reflection.
const maxReflectionBytes = 16 << 10

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	habits []string
	now    func() time.Time
}

// New creates a journal UseCase for the given habit names. Blank and duplicate
// names (case-insensitive) are dropped; order is kept.
func New(l pkgLog.Logger, repo repository.Repository, habits []string) journal.UseCase {
	return newUseCase(l, repo, habits)
}

func newUseCase(l pkgLog.Logger, repo repository.Repository, habits []string) *implUseCase {
	seen := make(map[string]struct{}, len(habits))
	var names []string
	for _, h := range habits {
		h = strings.TrimSpace(h)
		key := strings.ToLower(h)
		if h == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, h)
	}

	return &implUseCase{
		l:      l,
		repo:   repo,
		habits: names,
		now:    time.Now,
	}
}
