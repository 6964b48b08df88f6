package model

import "time"

// TimestampFormat is the fixed format operators use for the start/end fields.
const TimestampFormat = "2006-01-02 15:04"

type ExecutionMode string

const MODE_SYNC ExecutionMode = "SYNC"
const MODE_ASYNC ExecutionMode = "ASYNC"

type InvocationStatus string

const STATUS_OK InvocationStatus = "OK"
const STATUS_FAILED InvocationStatus = "FAILED"

// FieldSpec declares which input slots an action consumes. Options holds
// the legal values for the option slot and is non-empty only when Option
// is set.
type FieldSpec struct {
	Primary   bool
	Secondary bool
	Option    bool
	Extra     bool
	TimeRange bool
	Messages  bool
	Options   []string
}

// RawFields is the snapshot of the form fields exactly as typed by the
// operator, before any validation.
type RawFields struct {
	Primary         string
	Secondary       string
	Option          string
	Extra           string
	Start           string
	End             string
	MessageInternal string
	MessageExternal string
}

// Context is the validated, typed input set for one invocation. A slot is
// populated only if the chosen action declares it; unused slots are
// cleared, never stale from a prior action.
type Context struct {
	Primary         string
	Secondary       string
	Option          string
	Extra           string
	Start           time.Time
	End             time.Time
	MessageInternal string
	MessageExternal string
}

// Row is one display-ready record. All failure classes terminate in a row
// carrying the "error" column; informational outcomes carry "info".
type Row map[string]any

type InvocationRecord struct {
	Id          string           `json:"id"`
	ActionKey   int              `json:"actionKey"`
	ActionLabel string           `json:"actionLabel"`
	Mode        ExecutionMode    `json:"mode"`
	Status      InvocationStatus `json:"status"`
	Error       string           `json:"error,omitempty"`
	StartedAt   time.Time        `json:"startedAt"`
	DurationMs  int64            `json:"durationMs"`
	RowCount    int              `json:"rowCount"`
}
