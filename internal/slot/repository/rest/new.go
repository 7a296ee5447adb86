package rest

import (
	"time"

	"daily-planner/internal/slot/repository"
	pkgLog "daily-planner/pkg/log"
	"daily-planner/pkg/restdb"
)

const (
	slotTable      = "planner_slots"
	slotConflictOn = "date,slot_index"
)

type implRepository struct {
	client *restdb.Client
	loc    *time.Location
	l      pkgLog.Logger
}

// New creates a slot repository backed by the REST row store. Dates read back are
// interpreted in loc.
func New(client *restdb.Client, loc *time.Location, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		loc:    loc,
		l:      l,
	}
}
