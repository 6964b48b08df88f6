package util

import (
	"sync"

	"github.com/sukh8282/exconsole/logger"
	"go.uber.org/zap"
)

type Task any

// Worker drains tasks from a shared channel. Several workers fed from the
// same channel form a bounded pool: at most that many tasks run at once.
type Worker struct {
	name     string
	stop     chan struct{}
	wg       *sync.WaitGroup
	handler  func(Task) error
	taskChan <-chan Task
}

func NewWorker(name string, wg *sync.WaitGroup, handler func(Task) error, taskChan <-chan Task) *Worker {
	return &Worker{
		name:     name,
		wg:       wg,
		stop:     make(chan struct{}),
		handler:  handler,
		taskChan: taskChan,
	}
}

func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		for {
			select {
			case task := <-w.taskChan:
				err := w.handler(task)
				if err != nil {
					logger.Error("error in executing task in worker", zap.String("worker", w.name), zap.Error(err))
				}
			case <-w.stop:
				logger.Info("stopping worker", zap.String("worker", w.name))
				return
			}
		}
	}()
}

func (w *Worker) Stop() {
	w.stop <- struct{}{}
}
