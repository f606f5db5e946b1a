package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timetrack-cli/timetrack/internal/model"
)

var baseTime = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestStartOnEmptyLog(t *testing.T) {
	var l model.Log
	assert.True(t, l.Start(strPtr("work"), baseTime))
	require.Len(t, l, 1)
	assert.True(t, l[0].IsStart())
	assert.True(t, l.Running())
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	var l model.Log
	require.True(t, l.Start(nil, baseTime))
	assert.False(t, l.Start(nil, baseTime.Add(time.Hour)))
	assert.Len(t, l, 1, "second start in a row must be absorbed")
	assert.True(t, l.Running())
}

func TestStopWhileStoppedIsNoOp(t *testing.T) {
	var l model.Log
	require.True(t, l.Start(nil, baseTime))
	require.True(t, l.Stop(nil, baseTime.Add(time.Hour)))
	assert.False(t, l.Stop(nil, baseTime.Add(2*time.Hour)))
	assert.Len(t, l, 2)
	assert.False(t, l.Running())
}

func TestStopOnEmptyLogIsAppended(t *testing.T) {
	// A log may begin with a Stop event.
	var l model.Log
	assert.True(t, l.Stop(nil, baseTime))
	require.Len(t, l, 1)
	assert.True(t, l[0].IsStop())
	assert.False(t, l.Running())
}

func TestRunningFlipsOnlyOnTransitions(t *testing.T) {
	var l model.Log
	assert.False(t, l.Running())
	l.Start(nil, baseTime)
	assert.True(t, l.Running())
	l.Start(nil, baseTime)
	assert.True(t, l.Running())
	l.Stop(nil, baseTime.Add(time.Hour))
	assert.False(t, l.Running())
	l.Stop(nil, baseTime.Add(time.Hour))
	assert.False(t, l.Running())
	assert.Len(t, l, 2)
}

func TestContinueReusesLastDescription(t *testing.T) {
	var l model.Log
	require.True(t, l.Start(strPtr("working on X"), baseTime))
	require.True(t, l.Stop(nil, baseTime.Add(time.Hour)))

	appended, empty := l.Continue(baseTime.Add(2 * time.Hour))
	assert.True(t, appended)
	assert.False(t, empty)
	require.Len(t, l, 3)
	last := l.Last()
	require.NotNil(t, last.Description)
	assert.Equal(t, "working on X", *last.Description)
	assert.True(t, l.Running())
}

func TestContinueScansPastTrailingStops(t *testing.T) {
	l := model.Log{
		model.NewStart(strPtr("task"), baseTime),
		model.NewStop(strPtr("break"), baseTime.Add(time.Hour)),
		model.NewStop(nil, baseTime.Add(2*time.Hour)),
	}
	appended, _ := l.Continue(baseTime.Add(3 * time.Hour))
	assert.True(t, appended)
	last := l.Last()
	require.NotNil(t, last.Description)
	assert.Equal(t, "task", *last.Description)
}

func TestContinueOnEmptyLog(t *testing.T) {
	var l model.Log
	appended, empty := l.Continue(baseTime)
	assert.False(t, appended)
	assert.True(t, empty)
	assert.Len(t, l, 0)
}

func TestContinueWhileRunningIsNoOp(t *testing.T) {
	var l model.Log
	require.True(t, l.Start(nil, baseTime))
	appended, empty := l.Continue(baseTime.Add(time.Hour))
	assert.False(t, appended)
	assert.False(t, empty)
	assert.Len(t, l, 1)
}

func TestContinueWithoutPriorStart(t *testing.T) {
	var l model.Log
	require.True(t, l.Stop(nil, baseTime))
	appended, empty := l.Continue(baseTime.Add(time.Hour))
	assert.False(t, appended)
	assert.False(t, empty)
	assert.Len(t, l, 1)
}

func TestEventInstantsAreStoredUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	local := time.Date(2024, 1, 1, 10, 0, 0, 0, loc)

	e := model.NewStart(nil, local)
	assert.Equal(t, time.UTC, e.Time.Location())
	assert.True(t, e.Time.Equal(local))
}
