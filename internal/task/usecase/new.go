package usecase

import (
	"sync"

	"study-task-tracker/internal/model"
	"study-task-tracker/internal/task/repository"
	"study-task-tracker/pkg/gcalendar"
	pkgLog "study-task-tracker/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.BlobStore

	// calendar is optional; when nil no events are exported.
	calendar   *gcalendar.Client
	calendarID string
	timezone   string

	// mu serializes every load/save cycle with the mutators so a
	// read-modify-write never interleaves with another one.
	mu    sync.Mutex
	tasks []model.Task
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.BlobStore,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}

// snapshot returns a copy of the collection for lock-free reads.
func (uc *implUseCase) snapshot() []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]model.Task, len(uc.tasks))
	copy(out, uc.tasks)
	return out
}
