package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	c "github.com/patrickmn/go-cache"
	"github.com/sukh8282/exconsole/config"
	"github.com/sukh8282/exconsole/logger"
	"go.uber.org/zap"
)

const connectedKey = "connected"

var _ Client = new(Session)

// Session owns the long-lived connection to the remote management
// gateway. It is shared across invocations and never serialized by the
// dispatch core; the core only consults IsConnected before heavy
// actions. Probe results are cached for a short TTL so repeated
// dispatches do not hammer the gateway.
type Session struct {
	cfg        config.RemoteConfig
	httpClient *http.Client
	probeCache *c.Cache
}

func NewSession(cfg config.RemoteConfig) *Session {
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 30
	}
	if cfg.ProbeTTLSeconds == 0 {
		cfg.ProbeTTLSeconds = 10
	}
	return &Session{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		probeCache: c.New(time.Duration(cfg.ProbeTTLSeconds)*time.Second, time.Minute),
	}
}

// Connect probes the gateway until it answers, retrying on a constant
// interval.
func (s *Session) Connect() error {
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), uint64(s.cfg.ConnectRetries))
	err := backoff.Retry(func() error {
		return s.probe()
	}, b)
	if err != nil {
		return fmt.Errorf("can not connect to remote gateway %s: %w", s.cfg.Endpoint, err)
	}
	s.probeCache.Set(connectedKey, true, c.DefaultExpiration)
	logger.Info("connected to remote gateway", zap.String("endpoint", s.cfg.Endpoint))
	return nil
}

func (s *Session) IsConnected() bool {
	if v, found := s.probeCache.Get(connectedKey); found {
		return v.(bool)
	}
	connected := s.probe() == nil
	s.probeCache.Set(connectedKey, connected, c.DefaultExpiration)
	return connected
}

func (s *Session) probe() error {
	req, err := http.NewRequest(http.MethodGet, s.cfg.Endpoint+"/ping", nil)
	if err != nil {
		return err
	}
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}
	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway ping returned %d", res.StatusCode)
	}
	return nil
}

type callRequest struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

type callResponse struct {
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

func (s *Session) Call(op string, params map[string]any) (any, error) {
	body, err := json.Marshal(callRequest{Op: op, Params: params})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, s.cfg.Endpoint+"/invoke", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}
	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out callResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("can not decode gateway response for %s: %w", op, err)
	}
	if res.StatusCode != http.StatusOK || out.Error != "" {
		return nil, fmt.Errorf("remote operation %s failed: %s", op, out.Error)
	}
	return out.Result, nil
}
