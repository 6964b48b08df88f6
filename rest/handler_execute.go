package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"go.uber.org/zap"
)

type executeRequest struct {
	Action int             `json:"action"`
	Fields model.RawFields `json:"fields"`
}

func (s *Server) HandleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid execute request")
		return
	}
	defer r.Body.Close()
	if _, ok := s.registry.Get(req.Action); !ok {
		logger.Error("no action at requested index", zap.Int("action", req.Action))
		respondWithError(w, http.StatusBadRequest, "no action at index "+strconv.Itoa(req.Action))
		return
	}
	invocationId := s.dispatcher.Dispatch(req.Action, req.Fields)
	respondOK(w, map[string]any{"id": invocationId})
}

func (s *Server) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	records, err := s.storage.ListInvocations(limit)
	if err != nil {
		logger.Error("error listing invocation history", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error listing invocation history")
		return
	}
	respondWithJSON(w, http.StatusOK, records)
}
