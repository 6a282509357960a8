package container

import (
	"context"
	"sync"
)

// ── Task spans ────────────────────────────────────────────────────────────────

// taskScope holds the per-task cache: one lazily created slot per descriptor.
// A span may be shared by several goroutines (whoever the caller hands the
// bound resolver to), so the slot map is lock-guarded and each slot keeps the
// usual per-descriptor build lock.
type taskScope struct {
	mu    sync.Mutex
	slots map[int]*slot
}

func newTaskScope() *taskScope {
	return &taskScope{slots: make(map[int]*slot)}
}

func (t *taskScope) slot(id int) *slot {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.slots[id]
	if !ok {
		s = &slot{}
		t.slots[id] = s
	}
	return s
}

// NewTask returns a resolver bound to a fresh task span. Registry, singletons
// and per-goroutine caches are shared with the parent; per-task services
// resolved through the returned resolver are cached in the new span only.
//
// Spawning a concurrent unit of work with its own span:
//
//	go worker(sp.NewTask())
//
// Passing the bound resolver itself carries the parent's span forward instead
// of starting a new one.
func (sp *Resolver) NewTask() *Resolver {
	cp := *sp
	cp.task = newTaskScope()
	cp.chain = nil
	return &cp
}

// HasTask reports whether the resolver is bound to a task span.
func (sp *Resolver) HasTask() bool { return sp.task != nil }

type taskCtxKey struct{}

// NewTaskContext derives a context carrying a resolver bound to a fresh task
// span, the idiomatic way to scope per-task services to an HTTP request or
// a unit of background work.
//
//	ctx := container.NewTaskContext(r.Context(), sp)
//	r = r.WithContext(ctx)
func NewTaskContext(ctx context.Context, sp *Resolver) context.Context {
	return context.WithValue(ctx, taskCtxKey{}, sp.NewTask())
}

// FromTaskContext returns the task-bound resolver carried by ctx, if any.
func FromTaskContext(ctx context.Context) (*Resolver, bool) {
	sp, ok := ctx.Value(taskCtxKey{}).(*Resolver)
	return sp, ok
}
