package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Plenum/internal/calc/vessel"
)

type stubRecorder struct {
	mu      sync.Mutex
	entries []Entry
	err     error
	done    chan struct{}
}

func (s *stubRecorder) Record(_ context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
	return s.err
}

func TestAsyncRecorderDelivers(t *testing.T) {
	stub := &stubRecorder{done: make(chan struct{})}
	done := stub.done
	rec := NewAsyncRecorder(stub, zap.NewNop())

	err := rec.Record(context.Background(), Entry{RecordID: "C-1"})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("entry never reached the inner recorder")
	}
	stub.mu.Lock()
	defer stub.mu.Unlock()
	require.Len(t, stub.entries, 1)
	assert.Equal(t, "C-1", stub.entries[0].RecordID)
}

func TestAsyncRecorderSwallowsFailures(t *testing.T) {
	stub := &stubRecorder{err: errors.New("db down"), done: make(chan struct{})}
	done := stub.done
	rec := NewAsyncRecorder(stub, zap.NewNop())

	err := rec.Record(context.Background(), Entry{RecordID: "C-2"})
	assert.NoError(t, err, "audit failure must never surface to the caller")
	<-done
}

func TestEntryFor(t *testing.T) {
	in := vessel.Input{ComponentID: "V-101-shell", Component: vessel.ComponentShell}
	full := vessel.FullResult{}
	full.TRequired.CodeReference = "ASME VIII-1 UG-27(c)(1)"

	e := EntryFor("inspector1", in, full)
	assert.Equal(t, "inspector1", e.User)
	assert.Equal(t, "V-101-shell", e.RecordID)
	assert.Equal(t, "vessel_components", e.Table)
	assert.Equal(t, "ASME VIII-1 UG-27(c)(1)", e.CodeReference)
	assert.Equal(t, vessel.EngineVersion, e.EngineVersion)
	assert.NotEmpty(t, e.DatabaseVersion)
	assert.False(t, e.CreatedAt.IsZero())
}
