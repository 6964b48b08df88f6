package settings

import (
	"os"
	"sync"

	"github.com/spf13/viper"
	"github.com/sukh8282/exconsole/logger"
	"go.uber.org/zap"
)

// Settings holds the operator adjustable knobs. They are loaded once at
// process start and written back at shutdown; asyncEnabledForHeavy is
// read once per invocation by the dispatcher.
//
// Async execution stays off by default: background calls have been
// observed to destabilize the long-lived remote session, so enabling it
// is an explicit operator decision.
type Settings struct {
	mu                   sync.RWMutex
	file                 string
	asyncEnabledForHeavy bool
	workerCount          int
}

func defaults() *Settings {
	return &Settings{
		asyncEnabledForHeavy: false,
		workerCount:          2,
	}
}

func Load(file string) (*Settings, error) {
	s := defaults()
	s.file = file
	if file == "" {
		return s, nil
	}
	v := viper.New()
	v.SetConfigFile(file)
	v.SetDefault("async-enabled-for-heavy", s.asyncEnabledForHeavy)
	v.SetDefault("worker-count", s.workerCount)
	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, err
		}
		logger.Info("settings file not found, using defaults", zap.String("file", file))
	}
	s.asyncEnabledForHeavy = v.GetBool("async-enabled-for-heavy")
	s.workerCount = v.GetInt("worker-count")
	return s, nil
}

func (s *Settings) Save() error {
	if s.file == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := viper.New()
	v.Set("async-enabled-for-heavy", s.asyncEnabledForHeavy)
	v.Set("worker-count", s.workerCount)
	return v.WriteConfigAs(s.file)
}

func (s *Settings) AsyncEnabledForHeavy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.asyncEnabledForHeavy
}

func (s *Settings) SetAsyncEnabledForHeavy(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asyncEnabledForHeavy = enabled
}

func (s *Settings) WorkerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workerCount
}

func (s *Settings) SetWorkerCount(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workerCount = count
}
