package dispatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/analytics"
	"github.com/sukh8282/exconsole/engine"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/normalize"
	"github.com/sukh8282/exconsole/persistence"
	"github.com/sukh8282/exconsole/settings"
	"go.uber.org/zap"
)

// Connection is the precondition gate owned by the session collaborator.
type Connection interface {
	IsConnected() bool
}

// Sink is the display collaborator. Present and SetBusy are only ever
// called from the dispatching goroutine or the single completion
// consumer, never from pool workers.
type Sink interface {
	Present(rows []model.Row)
	SetBusy(busy bool)
}

type pendingInvocation struct {
	mode      model.ExecutionMode
	startedAt time.Time
}

// Dispatcher is the orchestration glue: validate, gate heavy actions on
// the live connection, pick sync or async per settings, execute, and
// route normalized rows to the sink. Every failure class ends in rows;
// nothing propagates as a fault.
type Dispatcher struct {
	registry *action.Registry
	engine   *engine.Engine
	session  Connection
	settings *settings.Settings
	sink     Sink
	storage  persistence.Storage

	mu       sync.Mutex
	pending  map[string]pendingInvocation
	inFlight int

	stop chan struct{}
	wg   *sync.WaitGroup
}

func NewDispatcher(registry *action.Registry, eng *engine.Engine, session Connection, sett *settings.Settings, sink Sink, storage persistence.Storage, wg *sync.WaitGroup) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		engine:   eng,
		session:  session,
		settings: sett,
		sink:     sink,
		storage:  storage,
		pending:  make(map[string]pendingInvocation),
		stop:     make(chan struct{}),
		wg:       wg,
	}
}

// Start launches the single consumer loop draining engine completions.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case completion := <-d.engine.Results():
				d.finish(completion)
			case <-d.stop:
				logger.Info("stopping dispatcher")
				return
			}
		}
	}()
}

func (d *Dispatcher) Stop() {
	d.stop <- struct{}{}
}

// Dispatch is the single entry point behind the run trigger. It returns
// the invocation id; rows reach the sink, never the caller.
func (d *Dispatcher) Dispatch(index int, raw model.RawFields) string {
	invocationId := uuid.New().String()
	startedAt := time.Now()

	act, ok := d.registry.Get(index)
	if !ok {
		d.sink.Present(normalize.ErrorRows(model.EngineError{Message: fmt.Sprintf("no action at index %d", index)}))
		return invocationId
	}

	ctx, err := BuildContext(act, raw)
	if err != nil {
		d.present(act, model.MODE_SYNC, invocationId, startedAt, nil, err)
		return invocationId
	}

	if act.IsHeavy() && !d.session.IsConnected() {
		d.present(act, model.MODE_SYNC, invocationId, startedAt, nil, model.PreconditionError{Action: act.GetLabel()})
		return invocationId
	}

	if act.IsHeavy() && d.settings.AsyncEnabledForHeavy() {
		d.dispatchAsync(act, ctx, invocationId, startedAt)
		return invocationId
	}
	d.dispatchSync(act, ctx, invocationId, startedAt)
	return invocationId
}

func (d *Dispatcher) dispatchSync(act action.Action, ctx *model.Context, invocationId string, startedAt time.Time) {
	var out any
	var err error
	func() {
		d.beginExecution()
		defer d.endExecution()
		out, err = d.engine.ExecuteSync(act, ctx)
	}()
	d.present(act, model.MODE_SYNC, invocationId, startedAt, out, err)
}

// dispatchAsync registers the invocation before submitting so a fast
// completion always finds its metadata; the invocation id doubles as
// the engine job id.
func (d *Dispatcher) dispatchAsync(act action.Action, ctx *model.Context, invocationId string, startedAt time.Time) {
	d.beginExecution()
	d.mu.Lock()
	d.pending[invocationId] = pendingInvocation{mode: model.MODE_ASYNC, startedAt: startedAt}
	d.mu.Unlock()
	if err := d.engine.Submit(invocationId, act, ctx); err != nil {
		d.mu.Lock()
		delete(d.pending, invocationId)
		d.mu.Unlock()
		d.endExecution()
		d.present(act, model.MODE_ASYNC, invocationId, startedAt, nil, err)
	}
}

// finish applies one completion on the consumer goroutine.
func (d *Dispatcher) finish(completion engine.Completion) {
	d.mu.Lock()
	meta, ok := d.pending[completion.JobId]
	delete(d.pending, completion.JobId)
	d.mu.Unlock()
	if !ok {
		logger.Error("completion for unknown job", zap.String("jobId", completion.JobId))
		meta = pendingInvocation{mode: model.MODE_ASYNC, startedAt: time.Now()}
	}
	d.endExecution()
	d.present(completion.Action, meta.mode, completion.JobId, meta.startedAt, completion.Output, completion.Err)
}

// beginExecution and endExecution keep the busy indicator true exactly
// while at least one handler is executing. Overlapping invocations share
// one busy window: set on the first to start, cleared by the last to
// finish.
func (d *Dispatcher) beginExecution() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight++
	if d.inFlight == 1 {
		d.sink.SetBusy(true)
	}
}

func (d *Dispatcher) endExecution() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight--
	if d.inFlight == 0 {
		d.sink.SetBusy(false)
	}
}

func (d *Dispatcher) present(act action.Action, mode model.ExecutionMode, invocationId string, startedAt time.Time, out any, err error) {
	var rows []model.Row
	status := model.STATUS_OK
	errText := ""
	if err != nil {
		status = model.STATUS_FAILED
		errText = err.Error()
		if _, ok := err.(model.PreconditionError); ok {
			rows = []model.Row{{"info": errText}}
		} else {
			rows = normalize.ErrorRows(err)
		}
		analytics.RecordActionFailure(act.GetLabel(), string(mode))
	} else {
		rows = normalize.Rows(out)
		analytics.RecordActionSuccess(act.GetLabel(), string(mode))
	}
	duration := time.Since(startedAt)
	analytics.RecordDuration(act.GetLabel(), string(mode), duration)

	record := model.InvocationRecord{
		Id:          invocationId,
		ActionKey:   act.GetKey(),
		ActionLabel: act.GetLabel(),
		Mode:        mode,
		Status:      status,
		Error:       errText,
		StartedAt:   startedAt,
		DurationMs:  duration.Milliseconds(),
		RowCount:    len(rows),
	}
	if saveErr := d.storage.SaveInvocation(record); saveErr != nil {
		logger.Error("error saving invocation record", zap.String("id", invocationId), zap.Error(saveErr))
	}

	d.sink.Present(rows)
}
