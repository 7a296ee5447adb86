package usecase

import (
	"time"

	"daily-planner/internal/recurring"
	"daily-planner/internal/recurring/repository"
	"daily-planner/internal/slot"
	"daily-planner/pkg/datemath"
	pkgLog "daily-planner/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	slotUC slot.UseCase
	dates  *datemath.Parser
	now    func() time.Time
}

// New creates a recurring UseCase that schedules templates through slotUC.
func New(l pkgLog.Logger, repo repository.Repository, slotUC slot.UseCase, dates *datemath.Parser) recurring.UseCase {
	return newUseCase(l, repo, slotUC, dates)
}

func newUseCase(l pkgLog.Logger, repo repository.Repository, slotUC slot.UseCase, dates *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		slotUC: slotUC,
		dates:  dates,
		now:    time.Now,
	}
}
