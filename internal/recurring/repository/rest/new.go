package rest

import (
	"time"

	"daily-planner/internal/recurring/repository"
	pkgLog "daily-planner/pkg/log"
	"daily-planner/pkg/restdb"
)

const (
	templateTable      = "planner_templates"
	templateConflictOn = "id"
)

type implRepository struct {
	client *restdb.Client
	loc    *time.Location
	l      pkgLog.Logger
}

// New creates a template repository backed by the REST row store.
func New(client *restdb.Client, loc *time.Location, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		loc:    loc,
		l:      l,
	}
}
