package rest

import (
	"encoding/json"
	"net/http"

	"github.com/sukh8282/exconsole/logger"
	"go.uber.org/zap"
)

func (s *Server) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]any{"connected": s.session.IsConnected()})
}

type settingsView struct {
	AsyncEnabledForHeavy bool `json:"asyncEnabledForHeavy"`
	WorkerCount          int  `json:"workerCount"`
}

func (s *Server) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, settingsView{
		AsyncEnabledForHeavy: s.settings.AsyncEnabledForHeavy(),
		WorkerCount:          s.settings.WorkerCount(),
	})
}

func (s *Server) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var view settingsView
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid settings")
		return
	}
	defer r.Body.Close()
	s.settings.SetAsyncEnabledForHeavy(view.AsyncEnabledForHeavy)
	if view.WorkerCount > 0 {
		s.settings.SetWorkerCount(view.WorkerCount)
	}
	if err := s.settings.Save(); err != nil {
		logger.Error("error saving settings", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error saving settings")
		return
	}
	respondOK(w, map[string]any{"updated": true})
}
