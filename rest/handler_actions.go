package rest

import (
	"net/http"

	"github.com/sukh8282/exconsole/model"
)

type actionView struct {
	Key    int           `json:"key"`
	Label  string        `json:"label"`
	Heavy  bool          `json:"heavy"`
	Fields fieldSpecView `json:"fields"`
}

type fieldSpecView struct {
	Primary   bool     `json:"primary"`
	Secondary bool     `json:"secondary"`
	Option    bool     `json:"option"`
	Extra     bool     `json:"extra"`
	TimeRange bool     `json:"timeRange"`
	Messages  bool     `json:"messages"`
	Options   []string `json:"options,omitempty"`
}

func toFieldSpecView(spec model.FieldSpec) fieldSpecView {
	return fieldSpecView{
		Primary:   spec.Primary,
		Secondary: spec.Secondary,
		Option:    spec.Option,
		Extra:     spec.Extra,
		TimeRange: spec.TimeRange,
		Messages:  spec.Messages,
		Options:   spec.Options,
	}
}

func (s *Server) HandleListActions(w http.ResponseWriter, r *http.Request) {
	views := make([]actionView, 0, s.registry.Count())
	for _, act := range s.registry.All() {
		views = append(views, actionView{
			Key:    act.GetKey(),
			Label:  act.GetLabel(),
			Heavy:  act.IsHeavy(),
			Fields: toFieldSpecView(act.GetFieldSpec()),
		})
	}
	respondWithJSON(w, http.StatusOK, views)
}
