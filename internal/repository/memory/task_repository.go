package memory

import (
	"sort"
	"time"

	"doc-agent-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// TaskRepository keeps upload tasks in memory. Terminal tasks stay readable
// for display and expire after a day. Stored entries are immutable values:
// Save copies the task in and Get/All copy it out, so the ingestion goroutine
// and the read endpoints never share a mutable task.
type TaskRepository struct {
	cache *cache.Cache
}

func NewTaskRepository() *TaskRepository {
	// Tasks expire 24 hours after their last update; expired entries are
	// purged every hour.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &TaskRepository{
		cache: c,
	}
}

func (r *TaskRepository) Save(task *store.UploadTask) {
	copied := *task
	r.cache.Set(task.ID, copied, cache.DefaultExpiration)
}

func (r *TaskRepository) Get(taskID string) (*store.UploadTask, bool) {
	if x, found := r.cache.Get(taskID); found {
		copied := x.(store.UploadTask)
		return &copied, true
	}
	return nil, false
}

// All returns copies of the known tasks, newest first.
func (r *TaskRepository) All() []*store.UploadTask {
	items := r.cache.Items()
	tasks := make([]*store.UploadTask, 0, len(items))
	for _, item := range items {
		copied := item.Object.(store.UploadTask)
		tasks = append(tasks, &copied)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}

func (r *TaskRepository) Delete(taskID string) {
	r.cache.Delete(taskID)
}
