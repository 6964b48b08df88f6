package agent

import (
	"errors"
	"net/http"
	"sync"

	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/analytics"
	"github.com/sukh8282/exconsole/config"
	"github.com/sukh8282/exconsole/dispatch"
	"github.com/sukh8282/exconsole/display"
	"github.com/sukh8282/exconsole/engine"
	"github.com/sukh8282/exconsole/exchange"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/persistence"
	"github.com/sukh8282/exconsole/persistence/memory"
	"github.com/sukh8282/exconsole/persistence/redis"
	"github.com/sukh8282/exconsole/remote"
	"github.com/sukh8282/exconsole/rest"
	"github.com/sukh8282/exconsole/settings"
	"go.uber.org/zap"
)

type Agent struct {
	Config       config.Config
	settings     *settings.Settings
	storage      persistence.Storage
	session      *remote.Session
	registry     *action.Registry
	engine       *engine.Engine
	dispatcher   *dispatch.Dispatcher
	httpServer   *rest.Server
	shutdown     bool
	shutdownLock sync.Mutex
	wg           sync.WaitGroup
}

func New(cfg config.Config) (*Agent, error) {
	a := &Agent{
		Config: cfg,
	}
	setup := []func() error{
		a.setupMetrics,
		a.setupSettings,
		a.setupStorage,
		a.setupSession,
		a.setupRegistry,
		a.setupEngine,
		a.setupDispatcher,
		a.setupHttpServer,
	}
	for _, fn := range setup {
		if err := fn(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Agent) setupMetrics() error {
	return analytics.InitMetrics()
}

func (a *Agent) setupSettings() error {
	var err error
	a.settings, err = settings.Load(a.Config.SettingsFile)
	return err
}

func (a *Agent) setupStorage() error {
	switch a.Config.StorageType {
	case config.STORAGE_TYPE_REDIS:
		redisConfig := a.Config.RedisConfig
		redisConfig.HistoryLimit = a.Config.HistoryLimit
		a.storage = redis.NewRedisStorage(redisConfig)
	default:
		a.storage = memory.NewInMemStorage(a.Config.HistoryLimit)
	}
	return nil
}

func (a *Agent) setupSession() error {
	a.session = remote.NewSession(a.Config.RemoteConfig)
	return nil
}

func (a *Agent) setupRegistry() error {
	a.registry = exchange.BuildRegistry(a.session)
	return nil
}

func (a *Agent) setupEngine() error {
	a.engine = engine.New(a.settings.WorkerCount())
	return nil
}

func (a *Agent) setupDispatcher() error {
	sink := display.NewConsoleSink()
	a.dispatcher = dispatch.NewDispatcher(a.registry, a.engine, a.session, a.settings, sink, a.storage, &a.wg)
	return nil
}

func (a *Agent) setupHttpServer() error {
	var err error
	a.httpServer, err = rest.NewServer(a.Config.HttpPort, a.registry, a.dispatcher, a.storage, a.session, a.settings)
	return err
}

func (a *Agent) Start() error {
	a.engine.Start()
	a.dispatcher.Start()
	if err := a.session.Connect(); err != nil {
		// light actions stay usable, heavy ones are gated until the
		// gateway answers a later probe
		logger.Error("remote gateway unreachable", zap.Error(err))
	}
	go func() {
		if err := a.httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error starting http server", zap.Error(err))
		}
	}()
	logger.Info("console agent started", zap.Int("actions", a.registry.Count()))
	return nil
}

func (a *Agent) Shutdown() error {
	a.shutdownLock.Lock()
	defer a.shutdownLock.Unlock()
	if a.shutdown {
		return nil
	}
	a.shutdown = true
	if err := a.settings.Save(); err != nil {
		logger.Error("error saving settings", zap.Error(err))
	}
	if err := a.httpServer.Stop(); err != nil {
		return err
	}
	a.engine.Stop()
	a.dispatcher.Stop()
	a.wg.Wait()
	return nil
}
