package status

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/bullet-hell/event"
)

const namespace = "bullet_hell"

// Tracker turns engine events into Prometheus series and registry figures
// It owns a private prometheus registry so several engines never collide on the default one
type Tracker struct {
	reg    *prometheus.Registry
	status *Registry

	despawned *prometheus.CounterVec
	unlocked  *prometheus.CounterVec
	powerups  *prometheus.CounterVec
	effects   *prometheus.CounterVec
	livesLost prometheus.Counter
	shields   prometheus.Counter
	grazes    prometheus.Counter
	pulses    prometheus.Counter
	cleared   prometheus.Counter
	runs      prometheus.Counter
	score     prometheus.Gauge
	lives     prometheus.Gauge
	ticks     prometheus.Gauge
	live      prometheus.Gauge
	final     prometheus.Histogram
}

// NewTracker creates the collectors, labelled with runID
func NewTracker(runID string, status *Registry) *Tracker {
	if status == nil {
		status = NewRegistry()
	}
	labels := prometheus.Labels{"run_id": runID}

	t := &Tracker{
		reg:    prometheus.NewRegistry(),
		status: status,
		despawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "entities_despawned_total", ConstLabels: labels,
			Help: "Entities removed, by kind and reason.",
		}, []string{"kind", "reason"}),
		unlocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "kinds_unlocked_total", ConstLabels: labels,
			Help: "Pattern kinds that became eligible to spawn.",
		}, []string{"kind"}),
		powerups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "powerups_collected_total", ConstLabels: labels,
			Help: "Power-ups collected, by type.",
		}, []string{"powerup"}),
		effects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "effect_requests_total", ConstLabels: labels,
			Help: "Temporal effect transitions, by effect and outcome.",
		}, []string{"effect", "outcome"}),
		livesLost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "lives_lost_total", ConstLabels: labels,
			Help: "Collisions that cost a life.",
		}),
		shields: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "shields_broken_total", ConstLabels: labels,
			Help: "Collisions absorbed by a shield.",
		}),
		grazes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "grazes_total", ConstLabels: labels,
			Help: "Near misses credited.",
		}),
		pulses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "pulses_total", ConstLabels: labels,
			Help: "Area clears released.",
		}),
		cleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "pulse_cleared_total", ConstLabels: labels,
			Help: "Entities removed by area clears.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "runs_started_total", ConstLabels: labels,
			Help: "Runs started, including restarts.",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "score", ConstLabels: labels,
			Help: "Score of the current run.",
		}),
		lives: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "lives", ConstLabels: labels,
			Help: "Lives left in the current run.",
		}),
		ticks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "ticks", ConstLabels: labels,
			Help: "Simulation ticks of the current run.",
		}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "live_entities", ConstLabels: labels,
			Help: "Entities in the arena.",
		}),
		final: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "final_score", ConstLabels: labels,
			Help:    "Score at run end.",
			Buckets: prometheus.ExponentialBuckets(10, 2, 12),
		}),
	}

	t.reg.MustRegister(
		t.despawned, t.unlocked, t.powerups, t.effects,
		t.livesLost, t.shields, t.grazes, t.pulses, t.cleared, t.runs,
		t.score, t.lives, t.ticks, t.live, t.final,
	)
	return t
}

// Gatherer exposes the private registry
func (t *Tracker) Gatherer() prometheus.Gatherer {
	return t.reg
}

// Status returns the figures registry
func (t *Tracker) Status() *Registry {
	return t.status
}

// Handler serves the /metrics exposition
func (t *Tracker) Handler() http.Handler {
	return promhttp.HandlerFor(t.reg, promhttp.HandlerOpts{})
}

// StartHTTP serves /metrics on addr in the background; shut the returned server down on exit
func (t *Tracker) StartHTTP(addr string, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", t.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Printf("metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("metrics server: %v", err)
		}
	}()
	return srv
}

// Shutdown stops a server started by StartHTTP
func Shutdown(srv *http.Server, timeout time.Duration) error {
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (t *Tracker) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntityDespawned,
		event.EventKindUnlocked,
		event.EventLifeLost,
		event.EventShieldBroken,
		event.EventGrazed,
		event.EventScored,
		event.EventPulseReleased,
		event.EventPowerUpCollected,
		event.EventEffectActivated,
		event.EventEffectQueued,
		event.EventEffectRejected,
		event.EventEffectExpired,
		event.EventRunStarted,
		event.EventRunEnded,
	}
}

func (t *Tracker) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEntityDespawned:
		if p, ok := ev.Payload.(*event.DespawnPayload); ok {
			t.despawned.WithLabelValues(p.Kind.String(), p.Reason.String()).Inc()
			t.status.Ints.Get(KeyDespawned).Add(1)
		}

	case event.EventKindUnlocked:
		if p, ok := ev.Payload.(*event.KindUnlockedPayload); ok {
			t.unlocked.WithLabelValues(p.Kind.String()).Inc()
		}

	case event.EventLifeLost:
		t.livesLost.Inc()
		if p, ok := ev.Payload.(*event.LifeLostPayload); ok {
			t.lives.Set(float64(p.Remaining))
			t.status.Ints.Get(KeyLives).Store(int64(p.Remaining))
		}

	case event.EventShieldBroken:
		t.shields.Inc()

	case event.EventGrazed:
		t.grazes.Inc()
		t.status.Ints.Get(KeyGrazes).Add(1)

	case event.EventScored:
		if p, ok := ev.Payload.(*event.ScorePayload); ok {
			t.score.Set(float64(p.Total))
			t.status.Ints.Get(KeyScore).Store(p.Total)
		}

	case event.EventPulseReleased:
		t.pulses.Inc()
		if p, ok := ev.Payload.(*event.PulsePayload); ok {
			t.cleared.Add(float64(p.Cleared))
		}

	case event.EventPowerUpCollected:
		if p, ok := ev.Payload.(*event.PowerUpPayload); ok {
			t.powerups.WithLabelValues(p.PowerUp.String()).Inc()
		}

	case event.EventEffectActivated, event.EventEffectQueued, event.EventEffectRejected, event.EventEffectExpired:
		p, ok := ev.Payload.(*event.EffectPayload)
		if !ok {
			return
		}
		t.effects.WithLabelValues(p.Effect.String(), outcome(ev.Type)).Inc()
		if ev.Type == event.EventEffectActivated {
			t.status.Strings.Get(KeyLastEffect).Store(p.Effect.String())
		}

	case event.EventRunStarted:
		t.runs.Inc()
		t.score.Set(0)
		t.status.Ints.Get(KeyRuns).Add(1)
		t.status.Ints.Get(KeyScore).Store(0)
		t.status.Ints.Get(KeyGrazes).Store(0)
		t.status.Bools.Get(KeyRunOver).Store(false)

	case event.EventRunEnded:
		if p, ok := ev.Payload.(*event.RunEndedPayload); ok {
			t.final.Observe(float64(p.Score))
		}
		t.lives.Set(0)
		t.status.Bools.Get(KeyRunOver).Store(true)
	}
}

// SetLives seeds the lives gauge at run start, before any loss event arrives
func (t *Tracker) SetLives(n int) {
	t.lives.Set(float64(n))
	t.status.Ints.Get(KeyLives).Store(int64(n))
}

func outcome(t event.EventType) string {
	switch t {
	case event.EventEffectActivated:
		return "activated"
	case event.EventEffectQueued:
		return "queued"
	case event.EventEffectRejected:
		return "rejected"
	default:
		return "expired"
	}
}

// Sample records per-frame figures the event stream does not carry
func (t *Tracker) Sample(tick int64, live int, survival time.Duration) {
	t.ticks.Set(float64(tick))
	t.live.Set(float64(live))
	t.status.Ints.Get(KeyLive).Store(int64(live))
	t.status.Floats.Get(KeySurvival).Set(survival.Seconds())
}
