package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"game-manager/internal/gamemanager"
	repo "game-manager/internal/gamemanager/repository"
)

// recordingLogger keeps Info lines so tests can assert what was executed.
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (m *recordingLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *recordingLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *recordingLogger) Info(ctx context.Context, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, fmt.Sprint(arg...))
}
func (m *recordingLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, fmt.Sprintf(template, arg...))
}
func (m *recordingLogger) Warn(ctx context.Context, arg ...any) {}
func (m *recordingLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *recordingLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo stores executions in a slice and can be told to fail.
type mockRepo struct {
	recorded []gamemanager.Execution
	lastOpt  repo.ListExecutionsOptions
	err      error
}

func (m *mockRepo) RecordExecution(ctx context.Context, exec gamemanager.Execution) error {
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, exec)
	return nil
}

func (m *mockRepo) ListExecutions(ctx context.Context, opt repo.ListExecutionsOptions) ([]gamemanager.Execution, int, error) {
	m.lastOpt = opt
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.recorded, len(m.recorded), nil
}

var errRepoDown = errors.New("repo down")

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(r *mockRepo, l *recordingLogger) *implUseCase {
	uc := New(r, l)
	uc.now = func() time.Time { return fixedNow }
	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("run-%d", n)
	}
	return uc
}
