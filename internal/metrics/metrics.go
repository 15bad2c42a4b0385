// Package metrics exposes generator and gameplay counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathadventure/internal/problemgen"
)

const namespace = "mathadventure"

// Collector counts generated problems and answers. It implements
// problemgen.Observer and session.Recorder.
type Collector struct {
	generated *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	exhausted *prometheus.CounterVec
	answers   *prometheus.CounterVec
}

// NewCollector creates the counters and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "problems_generated_total",
			Help:      "Problems issued to players, by tier and operation.",
		}, []string{"tier", "operation"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_draws_total",
			Help:      "Candidate problems discarded because they were already seen this session.",
		}, []string{"tier"}),
		exhausted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exhaustion_fallbacks_total",
			Help:      "Calls that ran out of attempts and allowed a repeat.",
		}, []string{"tier"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Answers submitted, by tier and result.",
		}, []string{"tier", "result"}),
	}
	reg.MustRegister(c.generated, c.rejected, c.exhausted, c.answers)
	return c
}

func (c *Collector) ProblemAccepted(tier problemgen.Tier, op problemgen.Operation) {
	c.generated.WithLabelValues(tier.String(), op.Name()).Inc()
}

func (c *Collector) DuplicateRejected(tier problemgen.Tier) {
	c.rejected.WithLabelValues(tier.String()).Inc()
}

func (c *Collector) AttemptsExhausted(tier problemgen.Tier) {
	c.exhausted.WithLabelValues(tier.String()).Inc()
}

// AnswerRecorded counts one submitted answer.
func (c *Collector) AnswerRecorded(tier problemgen.Tier, correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	c.answers.WithLabelValues(tier.String(), result).Inc()
}

// NewHandler wires health and metrics routes for g.
func NewHandler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

// Serve runs the metrics endpoint on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(g),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("metrics endpoint listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
