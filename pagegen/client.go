package pagegen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client is the unified, minimal public client. It is safe for concurrent
// use: the only mutable state is the lazily constructed backend, guarded by
// a mutex; everything else is resolved once in New and read-only afterwards.
type Client struct {
	cfg    Config
	model  string
	logger *zap.Logger

	mu      sync.Mutex
	invoker modelInvoker // lazily init
}

// New creates a Client with the given config. The model identifier and
// credential presence are resolved here, once; requests never re-read
// process configuration.
func New(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg:    cfg,
		model:  resolveModel(cfg.Provider, cfg.Model),
		logger: cfg.Logger.Named("pagegen"),
	}
}

// GeneratePage runs one edit request through the pipeline. It never returns
// an error: configuration, invocation and parse failures are all translated
// into a well-formed EditResult whose Files preserve the request's files
// (or, with no credential, a fixed placeholder page). At most one model
// invocation is made per call and nothing is retried.
func (c *Client) GeneratePage(ctx context.Context, req EditRequest) EditResult {
	log := c.logger.With(zap.String("request_id", uuid.NewString()))

	if c.cfg.APIKey == "" {
		log.Info("no API key configured, returning canned fallback")
		return missingKeyResult()
	}

	inv, err := c.ensureInvoker()
	if err != nil {
		log.Error("backend construction failed", zap.Error(err))
		return invocationFailureResult(req.Files, err)
	}

	parts := buildParts(req)
	log.Debug("prompt built",
		zap.String("model", c.model),
		zap.Int("parts", len(parts)),
		zap.Bool("variants_allowed", req.AllowVariants),
	)

	start := time.Now()
	res, err := inv.invoke(ctx, parts, req.AllowVariants)
	if err != nil {
		log.Warn("model invocation failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return invocationFailureResult(req.Files, err)
	}
	log.Info("model invocation complete",
		zap.Duration("duration", time.Since(start)),
		zap.Int("tool_calls", len(res.Calls)),
	)

	if call, ok := findVariantCall(res.Calls); ok {
		return interpretVariantCall(call, req.Files)
	}
	return c.parseResponse(res.Text, req.Files)
}

// ensureInvoker lazily constructs the configured backend. It is never
// reached without a credential, so construction failures here are genuine
// invocation-path failures.
func (c *Client) ensureInvoker() (modelInvoker, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.invoker != nil {
		return c.invoker, nil
	}
	var (
		inv modelInvoker
		err error
	)
	switch c.cfg.Provider {
	case ProviderGoogle:
		inv, err = newGoogleInvoker(c.cfg, c.model, c.logger)
	case ProviderOpenAI:
		inv, err = newOpenAIInvoker(c.cfg, c.model, c.logger)
	default:
		err = fmt.Errorf("pagegen: unsupported provider %q", c.cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	c.invoker = inv
	return c.invoker, nil
}
