package coordinator

import (
	"context"
	"errors"
	"testing"

	"github.com/jcmexdev/ecommerce-checkout/internal/coordinator/sagalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStep tracks execution and compensation order via a shared journal.
type recordingStep struct {
	name          string
	executeErr    error
	compensateErr error
	journal       *[]string
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Execute(context.Context) error {
	*s.journal = append(*s.journal, "exec:"+s.name)
	return s.executeErr
}

func (s *recordingStep) Compensate(context.Context) error {
	*s.journal = append(*s.journal, "undo:"+s.name)
	return s.compensateErr
}

// memoryLog collects saga log entries in memory.
type memoryLog struct {
	entries []*sagalog.SagaLog
}

func (m *memoryLog) Save(_ context.Context, entry *sagalog.SagaLog) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryLog) statuses() []sagalog.Status {
	out := make([]sagalog.Status, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Status
	}
	return out
}

func TestStart_AllStepsSucceed(t *testing.T) {
	var journal []string
	steps := []Step{
		&recordingStep{name: "a", journal: &journal},
		&recordingStep{name: "b", journal: &journal},
	}
	log := &memoryLog{}

	err := NewOrchestrator("saga-1", `{"k":"v"}`, steps, log).Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"exec:a", "exec:b"}, journal)
	assert.Equal(t, []sagalog.Status{
		sagalog.StatusStarted,
		sagalog.StatusStepDone,
		sagalog.StatusStepDone,
		sagalog.StatusCompleted,
	}, log.statuses())
	assert.Equal(t, `{"k":"v"}`, log.entries[0].Payload)
}

func TestStart_FailureCompensatesInReverseOrder(t *testing.T) {
	boom := errors.New("step c exploded")
	var journal []string
	steps := []Step{
		&recordingStep{name: "a", journal: &journal},
		&recordingStep{name: "b", journal: &journal},
		&recordingStep{name: "c", executeErr: boom, journal: &journal},
	}
	log := &memoryLog{}

	err := NewOrchestrator("saga-2", "", steps, log).Start(context.Background())

	assert.ErrorIs(t, err, boom, "the step's error must surface unwrapped")
	assert.Equal(t, []string{"exec:a", "exec:b", "exec:c", "undo:b", "undo:a"}, journal)
	assert.Equal(t, []sagalog.Status{
		sagalog.StatusStarted,
		sagalog.StatusStepDone,
		sagalog.StatusStepDone,
		sagalog.StatusCompensating,
		sagalog.StatusFailed,
	}, log.statuses())
}

func TestStart_FirstStepFailureCompensatesNothing(t *testing.T) {
	boom := errors.New("no dice")
	var journal []string
	steps := []Step{
		&recordingStep{name: "a", executeErr: boom, journal: &journal},
		&recordingStep{name: "b", journal: &journal},
	}

	err := NewOrchestrator("saga-3", "", steps, nil).Start(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"exec:a"}, journal, "later steps never run, nothing to undo")
}

func TestStart_CompensationErrorIsSwallowed(t *testing.T) {
	boom := errors.New("commit failed")
	var journal []string
	steps := []Step{
		&recordingStep{name: "a", compensateErr: errors.New("undo failed"), journal: &journal},
		&recordingStep{name: "b", executeErr: boom, journal: &journal},
	}

	err := NewOrchestrator("saga-4", "", steps, nil).Start(context.Background())

	assert.ErrorIs(t, err, boom, "compensation failures must not replace the step error")
	assert.Equal(t, []string{"exec:a", "exec:b", "undo:a"}, journal)
}

func TestStart_NilLogRepositoryIsSafe(t *testing.T) {
	var journal []string
	steps := []Step{&recordingStep{name: "a", journal: &journal}}

	err := NewOrchestrator("saga-5", "", steps, nil).Start(context.Background())

	require.NoError(t, err)
}
