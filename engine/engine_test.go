package engine

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/model"
)

type testAction struct {
	action.BaseAction
	fn func(ctx *model.Context) (any, error)
}

func newTestAction(label string, fn func(ctx *model.Context) (any, error)) *testAction {
	return &testAction{
		BaseAction: *action.NewBaseAction(0, label, model.FieldSpec{}, true),
		fn:         fn,
	}
}

func (a *testAction) Execute(ctx *model.Context) (any, error) {
	return a.fn(ctx)
}

func TestEngine(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T){
		"test sync success":                 testSyncSuccess,
		"test sync handler failure":         testSyncHandlerFailure,
		"test sync panic recovered":         testSyncPanicRecovered,
		"test async delivery":               testAsyncDelivery,
		"test mode transparent failures":    testModeTransparentFailures,
		"test pool ceiling":                 testPoolCeiling,
		"test worker count clamped to four": testWorkerCountClamped,
	} {
		t.Run(scenario, func(t *testing.T) {
			fn(t)
		})
	}
}

func testSyncSuccess(t *testing.T) {
	e := New(1)
	act := newTestAction("ok", func(ctx *model.Context) (any, error) {
		return model.Row{"status": "done"}, nil
	})
	out, err := e.ExecuteSync(act, &model.Context{})
	require.NoError(t, err)
	require.Equal(t, model.Row{"status": "done"}, out)
}

func testSyncHandlerFailure(t *testing.T) {
	e := New(1)
	act := newTestAction("fails", func(ctx *model.Context) (any, error) {
		return nil, fmt.Errorf("remote call failed")
	})
	_, err := e.ExecuteSync(act, &model.Context{})
	require.Error(t, err)
	hErr, ok := err.(model.HandlerError)
	require.True(t, ok)
	require.Equal(t, "fails", hErr.Action)
}

func testSyncPanicRecovered(t *testing.T) {
	e := New(1)
	act := newTestAction("panics", func(ctx *model.Context) (any, error) {
		panic("unexpected")
	})
	out, err := e.ExecuteSync(act, &model.Context{})
	require.Nil(t, out)
	require.Error(t, err)
	_, ok := err.(model.HandlerError)
	require.True(t, ok)
	require.Contains(t, err.Error(), "unexpected")
}

func testAsyncDelivery(t *testing.T) {
	e := New(2)
	e.Start()
	defer e.Stop()

	act := newTestAction("async", func(ctx *model.Context) (any, error) {
		return "done", nil
	})
	jobIds := make(map[string]bool)
	for i := 0; i < 5; i++ {
		jobId := fmt.Sprintf("job-%d", i)
		require.NoError(t, e.Submit(jobId, act, &model.Context{}))
		jobIds[jobId] = true
	}
	for i := 0; i < 5; i++ {
		select {
		case completion := <-e.Results():
			require.True(t, jobIds[completion.JobId])
			delete(jobIds, completion.JobId)
			require.NoError(t, completion.Err)
			require.Equal(t, "done", completion.Output)
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for completion")
		}
	}
	require.Empty(t, jobIds)
}

func testModeTransparentFailures(t *testing.T) {
	e := New(1)
	e.Start()
	defer e.Stop()

	act := newTestAction("fails", func(ctx *model.Context) (any, error) {
		return nil, fmt.Errorf("boom")
	})

	_, syncErr := e.ExecuteSync(act, &model.Context{})
	require.Error(t, syncErr)

	require.NoError(t, e.Submit("job-async", act, &model.Context{}))
	select {
	case completion := <-e.Results():
		require.Error(t, completion.Err)
		require.Equal(t, syncErr.Error(), completion.Err.Error())
		_, syncOk := syncErr.(model.HandlerError)
		_, asyncOk := completion.Err.(model.HandlerError)
		require.True(t, syncOk)
		require.True(t, asyncOk)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for completion")
	}
}

func testPoolCeiling(t *testing.T) {
	runCeiling(t, 2, 2)
}

func testWorkerCountClamped(t *testing.T) {
	runCeiling(t, 99, MAX_WORKERS)
}

func runCeiling(t *testing.T, workerCount int, ceiling int) {
	e := New(workerCount)
	e.Start()
	defer e.Stop()

	var inFlight int32
	var highWater int32
	act := newTestAction("slow", func(ctx *model.Context) (any, error) {
		current := atomic.AddInt32(&inFlight, 1)
		for {
			max := atomic.LoadInt32(&highWater)
			if current <= max || atomic.CompareAndSwapInt32(&highWater, max, current) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return nil, nil
	})

	jobs := ceiling*3 + 2
	for i := 0; i < jobs; i++ {
		require.NoError(t, e.Submit(fmt.Sprintf("job-%d", i), act, &model.Context{}))
	}
	for i := 0; i < jobs; i++ {
		select {
		case <-e.Results():
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for completions")
		}
	}
	require.LessOrEqual(t, atomic.LoadInt32(&highWater), int32(ceiling))
	require.Greater(t, atomic.LoadInt32(&highWater), int32(0))
}
