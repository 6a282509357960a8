package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/km-arc/go-container/app"
	"github.com/km-arc/go-container/container"
	"github.com/km-arc/go-container/routing"
)

// ── demo services ────────────────────────────────────────────────────────────

// RequestID is request-scoped: registered per-task, so every HTTP request
// resolves its own id and every resolve within one request sees the same id.
type RequestID struct {
	Value string
}

// HitCounter is a process-wide singleton shared by every request.
type HitCounter struct {
	mu sync.Mutex
	n  int
}

func (c *HitCounter) Hit() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n
}

func (c *HitCounter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Greeter is the polymorphic view demonstrated by /greeters: every
// registration mapped As[Greeter] shows up there, in registration order.
type Greeter interface {
	Greet() string
}

type EnglishGreeter struct{}

func (*EnglishGreeter) Greet() string { return "hello" }

type FrenchGreeter struct{}

func (*FrenchGreeter) Greet() string { return "bonjour" }

// ── provider ─────────────────────────────────────────────────────────────────

type DemoProvider struct {
	container.BaseProvider
}

func (p *DemoProvider) Register(b *container.Builder) {
	container.PerTask(b, func(*container.Resolver) (*RequestID, error) {
		return &RequestID{Value: uuid.NewString()}, nil
	})
	container.Singleton(b, func(*container.Resolver) (*HitCounter, error) {
		return &HitCounter{}, nil
	})
	container.As[Greeter](container.Transient(b, func(*container.Resolver) (*EnglishGreeter, error) {
		return &EnglishGreeter{}, nil
	}))
	container.As[Greeter](container.Transient(b, func(*container.Resolver) (*FrenchGreeter, error) {
		return &FrenchGreeter{}, nil
	}))
}

func (p *DemoProvider) Boot(sp *container.Resolver) {
	router := container.MustResolve[*routing.Router](sp)
	logger := container.MustResolve[*slog.Logger](sp)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		task, _ := container.FromTaskContext(r.Context())

		rid := container.MustResolve[*RequestID](task)
		hits := container.MustResolve[*HitCounter](task)

		// Same span: the second resolve returns the same request id.
		again := container.MustResolve[*RequestID](task)

		logger.Debug("handling request", "request_id", rid.Value)
		writeJSON(w, map[string]any{
			"request_id": rid.Value,
			"stable":     rid.Value == again.Value,
			"hit":        hits.Hit(),
		})
	})

	router.Get("/greeters", func(w http.ResponseWriter, r *http.Request) {
		task, _ := container.FromTaskContext(r.Context())

		greeters, err := container.ResolveAll[Greeter](task)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		greetings := make([]string, 0, len(greeters))
		for _, g := range greeters {
			greetings = append(greetings, g.Greet())
		}
		writeJSON(w, map[string]any{"greetings": greetings})
	})

	router.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		task, _ := container.FromTaskContext(r.Context())

		writeJSON(w, map[string]any{
			"hits": container.MustResolve[*HitCounter](task).Total(),
		})
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	application := app.New(&DemoProvider{})
	if err := application.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
