package ecs

import (
	"context"
	"log/slog"
	"reflect"
	"time"
)

// SchedulerStats summarises scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats holds execution timings for one system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// storageBinder is implemented by Query and Singleton.
type storageBinder interface {
	Init(storage *Storage)
}

// snapshotter is implemented by Query.
type snapshotter interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []snapshotter
	stats   SystemStats
}

// Scheduler runs registered systems in registration order, once per frame.
type Scheduler struct {
	storage *Storage
	systems []*registeredSystem
	frames  uint64
	logger  *slog.Logger
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the logger used for registration and run-loop messages.
func WithLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler creates a scheduler over storage.
func NewScheduler(storage *Storage, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		storage: storage,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Storage returns the scheduler's storage.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register appends system and binds its exported Query and Singleton
// fields to the scheduler's storage.
func (s *Scheduler) Register(system System) {
	rs := &registeredSystem{
		system: system,
		stats: SystemStats{
			Name:        systemName(system),
			MinDuration: time.Duration(1<<63 - 1),
		},
	}
	rs.queries = s.bindFields(system)
	s.systems = append(s.systems, rs)

	s.logger.Debug("system registered",
		"system", rs.stats.Name,
		"queries", len(rs.queries),
		"position", len(s.systems)-1)
}

func (s *Scheduler) bindFields(system System) []snapshotter {
	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	var queries []snapshotter
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		binder, ok := field.Addr().Interface().(storageBinder)
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if q, ok := binder.(snapshotter); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Once runs every system a single time with the given delta time in seconds
// and then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(s.frames, dt, s.storage)
	s.frames++

	for _, rs := range s.systems {
		start := time.Now()
		for _, q := range rs.queries {
			q.Execute()
		}
		rs.system.Execute(frame)
		rs.record(time.Since(start))
	}

	frame.Commands.Flush(s.storage)
}

func (rs *registeredSystem) record(d time.Duration) {
	rs.stats.ExecutionCount++
	rs.stats.LastDuration = d
	rs.stats.TotalDuration += d
	rs.stats.MinDuration = min(rs.stats.MinDuration, d)
	rs.stats.MaxDuration = max(rs.stats.MaxDuration, d)
}

// Run calls Once on every tick of interval, passing the measured wall-clock
// delta, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Debug("scheduler running", "interval", interval, "systems", len(s.systems))

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopped", "frames", s.frames)
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Once(dt)
		}
	}
}

// Frames returns the number of frames run so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// GetStats returns a copy of the per-system timings.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}

	for i, rs := range s.systems {
		st := rs.stats
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		} else {
			st.MinDuration = 0
		}
		stats.Systems[i] = st
		stats.TotalExecutions += st.ExecutionCount
	}
	return stats
}
