package rest

import (
	"time"

	"daily-planner/internal/journal/repository"
	pkgLog "daily-planner/pkg/log"
	"daily-planner/pkg/restdb"
)

const (
	habitTable      = "planner_habits"
	habitConflictOn = "date,name"

	reflectionTable      = "planner_reflections"
	reflectionConflictOn = "date"

	dateLayout = "2006-01-02"
)

type implRepository struct {
	client *restdb.Client
	loc    *time.Location
	l      pkgLog.Logger
}

// New creates a journal repository backed by the REST row store.
func New(client *restdb.Client, loc *time.Location, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		loc:    loc,
		l:      l,
	}
}
