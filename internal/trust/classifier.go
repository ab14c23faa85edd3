package trust

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodbridge/internal/trust/metrics"
	"foodbridge/pkg/requestcontext"
)

// TextGenerator is the port to a generative text model. Implementations make
// one blocking call per prompt; retry and timeout policy live in the client.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

//go:generate mockgen -source=classifier.go -destination=mocks/generator_mock.go -package=mocks TextGenerator

// Classifier assigns trust levels. Model output is treated as an untrusted
// oracle: it only ever influences the result after passing the ParseLevel
// allow-list, and no failure of the model ever reaches the caller.
type Classifier struct {
	gen     TextGenerator
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures optional classifier dependencies.
type Option func(*Classifier)

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Classifier) {
		c.metrics = m
	}
}

func NewClassifier(gen TextGenerator, logger *slog.Logger, opts ...Option) *Classifier {
	c := &Classifier{gen: gen, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps a profile to a trust level. It never returns an error:
// a generation failure or an out-of-set answer yields DefaultLevel, logged
// and counted but invisible to the caller.
func (c *Classifier) Classify(ctx context.Context, profile OrganizationProfile) Level {
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	raw, err := c.gen.Generate(ctx, buildPrompt(profile))
	c.metrics.ObserveGenerateLatency(time.Since(start))
	if err != nil {
		c.logger.WarnContext(ctx, "trust classification fell back to default",
			"request_id", requestID,
			"reason", "generation_error",
			"error", err,
		)
		c.metrics.IncrementFallback("generation_error")
		c.metrics.IncrementOutcome(string(DefaultLevel))
		return DefaultLevel
	}

	level, ok := ParseLevel(raw)
	if !ok {
		c.logger.WarnContext(ctx, "trust classification fell back to default",
			"request_id", requestID,
			"reason", "invalid_label",
			"raw_length", len(raw),
		)
		c.metrics.IncrementFallback("invalid_label")
	}
	c.metrics.IncrementOutcome(string(level))
	return level
}

// buildPrompt embeds the profile fields in a deterministic instruction. The
// model is told to answer with exactly one of the three label words.
func buildPrompt(p OrganizationProfile) string {
	return fmt.Sprintf(`You are an AI verification agent. Based on the organization details, assign a trust level:
- green: very trustworthy and established
- yellow: moderately trustworthy
- red: lacks trust or unclear

Organization:
- Name: %s
- Type: %s
- Location: %s
- Description: %s
- Docs: %s

Only respond with one word: green, yellow, or red.`,
		p.Name, p.OrgType, p.Location, p.Description, p.DocURL)
}
