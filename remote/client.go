package remote

// Client is the gateway every handler performs its remote work through.
// Opaque to the dispatch core; implementations may take arbitrary time
// and fail.
type Client interface {
	Call(op string, params map[string]any) (any, error)
}
