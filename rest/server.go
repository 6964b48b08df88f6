package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/dispatch"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/persistence"
	"github.com/sukh8282/exconsole/settings"
	"go.uber.org/zap"
)

// Server drives the console over HTTP. Results never come back on the
// execute response; they flow to the display sink and the history, so
// the one-way dispatch flow stays intact.
type Server struct {
	http.Server
	Port       int
	registry   *action.Registry
	dispatcher *dispatch.Dispatcher
	storage    persistence.Storage
	session    dispatch.Connection
	settings   *settings.Settings
}

func NewServer(httpPort int, registry *action.Registry, dispatcher *dispatch.Dispatcher, storage persistence.Storage, session dispatch.Connection, sett *settings.Settings) (*Server, error) {

	s := &Server{
		Server: http.Server{
			Addr:        fmt.Sprintf(":%d", httpPort),
			IdleTimeout: 2 * time.Second,
		},
		Port:       httpPort,
		registry:   registry,
		dispatcher: dispatcher,
		storage:    storage,
		session:    session,
		settings:   sett,
	}

	router := mux.NewRouter()
	router.HandleFunc("/actions", s.HandleListActions).Methods(http.MethodGet)
	router.HandleFunc("/execute", s.HandleExecute).Methods(http.MethodPost)
	router.HandleFunc("/history", s.HandleHistory).Methods(http.MethodGet)
	router.HandleFunc("/status", s.HandleStatus).Methods(http.MethodGet)
	router.HandleFunc("/settings", s.HandleGetSettings).Methods(http.MethodGet)
	router.HandleFunc("/settings", s.HandleUpdateSettings).Methods(http.MethodPut)

	router.Use(loggingMiddleware)
	s.Handler = router
	return s, nil
}

func (s *Server) Start() error {
	logger.Info("starting http server on", zap.Int("port", s.Port))
	if err := s.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	logger.Info("stopping http server")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := s.Shutdown(ctx)
	if err != nil {
		logger.Error("error shutting down http server")
	}
	return nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondOK(w http.ResponseWriter, message map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	res, _ := json.Marshal(message)
	w.Write(res)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
