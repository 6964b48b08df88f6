package engine

import (
	"fmt"
	"sync"

	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/util"
	"go.uber.org/zap"
)

const MIN_WORKERS = 1
const MAX_WORKERS = 4
const QUEUE_CAPACITY = 64

// Job is one in-flight asynchronous execution. It lives from Submit
// until its Completion is delivered.
type Job struct {
	Id     string
	Action action.Action
	Ctx    *model.Context
}

// Completion is delivered exactly once per job on the results channel.
// A single consumer loop drains it, so display state keeps one writer.
type Completion struct {
	JobId  string
	Action action.Action
	Output any
	Err    error
}

// Engine runs handlers either on the caller (sync) or on a bounded pool
// of workers (async). Handler faults are identical in shape across both
// modes: a HandlerError, never a propagated panic.
type Engine struct {
	queue   chan util.Task
	results chan Completion
	workers []*util.Worker
	wg      sync.WaitGroup
}

func New(workerCount int) *Engine {
	if workerCount < MIN_WORKERS {
		workerCount = MIN_WORKERS
	}
	if workerCount > MAX_WORKERS {
		workerCount = MAX_WORKERS
	}
	e := &Engine{
		queue:   make(chan util.Task, QUEUE_CAPACITY),
		results: make(chan Completion, QUEUE_CAPACITY),
	}
	for i := 0; i < workerCount; i++ {
		worker := util.NewWorker(fmt.Sprintf("engine-worker-%d", i), &e.wg, e.handle, e.queue)
		e.workers = append(e.workers, worker)
	}
	return e
}

func (e *Engine) Start() {
	for _, worker := range e.workers {
		worker.Start()
	}
	logger.Info("execution engine started", zap.Int("workers", len(e.workers)))
}

func (e *Engine) Stop() {
	for _, worker := range e.workers {
		worker.Stop()
	}
	e.wg.Wait()
}

func (e *Engine) handle(task util.Task) error {
	job, ok := task.(*Job)
	if !ok {
		return fmt.Errorf("can not handle task of type other than engine.Job")
	}
	out, err := runSafe(job.Action, job.Ctx)
	e.results <- Completion{
		JobId:  job.Id,
		Action: job.Action,
		Output: out,
		Err:    err,
	}
	return nil
}

// ExecuteSync runs the handler on the caller, blocking for its full
// duration. Default for every action, including heavy ones.
func (e *Engine) ExecuteSync(act action.Action, ctx *model.Context) (any, error) {
	return runSafe(act, ctx)
}

// Submit queues the handler for the pool and never blocks the caller.
// The job id is supplied by the caller so it can be registered before
// the job can possibly complete. A full queue surfaces as an
// EngineError instead of backpressure.
func (e *Engine) Submit(jobId string, act action.Action, ctx *model.Context) error {
	job := &Job{
		Id:     jobId,
		Action: act,
		Ctx:    ctx,
	}
	select {
	case e.queue <- job:
		return nil
	default:
		return model.EngineError{Message: "engine queue full"}
	}
}

func (e *Engine) Results() <-chan Completion {
	return e.results
}

func runSafe(act action.Action, ctx *model.Context) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("handler panicked", zap.String("action", act.GetLabel()), zap.Any("panic", r))
			out = nil
			err = model.HandlerError{Action: act.GetLabel(), Cause: fmt.Errorf("%v", r)}
		}
	}()
	result, execErr := act.Execute(ctx)
	if execErr != nil {
		return nil, model.HandlerError{Action: act.GetLabel(), Cause: execErr}
	}
	return result, nil
}
