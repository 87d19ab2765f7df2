// Package testutil provides deterministic task fixtures and assertion
// helpers for tests.
package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vanderheijden86/taskpad/pkg/model"
)

// GeneratorConfig controls task generation.
type GeneratorConfig struct {
	Seed        int64            // Random seed for determinism (0 = use current time)
	BaseTime    time.Time        // Base time for ids/timestamps (default: fixed time)
	PriorityMix []model.Priority // Priority distribution (nil = all medium)
}

// DefaultConfig returns a config suitable for most tests.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:        42, // Deterministic
		BaseTime:    time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		PriorityMix: []model.Priority{model.PriorityMedium},
	}
}

// Generator creates task fixtures with deterministic ids and timestamps.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
	seq int64
}

// New creates a Generator with the given config.
func New(cfg GeneratorConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.BaseTime.IsZero() {
		cfg.BaseTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	if len(cfg.PriorityMix) == 0 {
		cfg.PriorityMix = []model.Priority{model.PriorityMedium}
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewDefault creates a Generator with default config.
func NewDefault() *Generator {
	return New(DefaultConfig())
}

// Task creates a single task with the given title. Ids increase by one
// millisecond per generated task, mirroring timestamp-derived ids.
func (g *Generator) Task(title string) model.Task {
	id := g.cfg.BaseTime.UnixMilli() + g.seq
	g.seq++
	return model.Task{
		ID:          id,
		Title:       title,
		Priority:    g.cfg.PriorityMix[g.rng.Intn(len(g.cfg.PriorityMix))],
		DateCreated: id,
	}
}

// Tasks creates n tasks with generated titles.
func (g *Generator) Tasks(n int) []model.Task {
	tasks := make([]model.Task, n)
	for i := range tasks {
		tasks[i] = g.Task(fmt.Sprintf("task %d", i+1))
	}
	return tasks
}

// Snapshot wraps n generated tasks in a snapshot with default view state.
func (g *Generator) Snapshot(n int) model.Snapshot {
	return model.Snapshot{
		Tasks:   g.Tasks(n),
		Filters: model.DefaultFilters(),
		SortBy:  model.SortCustom,
	}
}
