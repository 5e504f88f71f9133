package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/event"
	"github.com/lixenwraith/bullet-hell/parameter"
	"github.com/lixenwraith/bullet-hell/pattern"
	"github.com/lixenwraith/bullet-hell/physics"
)

// Input is the player's intent, held until replaced
type Input struct {
	DX, DY float64 // Direction, clamped to unit length
	Focus  bool    // Slows movement and charges the pulse; release fires it
}

// Engine runs one simulation
// Not safe for concurrent use: the driver calls every method from its loop
type Engine struct {
	opts  Options
	field core.Rect

	clock     Clock
	arena     *Arena
	history   *History
	ledger    Ledger
	temporal  *Temporal
	scheduler *pattern.Scheduler
	ctx       *pattern.Context

	player     component.Player
	input      Input
	pickups    []component.Pickup
	nextPickup core.Entity

	queue  *event.EventQueue
	router *event.Router
	logger *log.Logger

	survival  time.Duration
	over      bool
	endReason string

	removals []removal // Scratch, reused every pass
}

type removal struct {
	id     core.Entity
	reason event.DespawnReason
}

// New creates an engine and starts the first run
func New(opts Options) *Engine {
	opts = opts.normalize()
	queue := event.NewEventQueue()

	e := &Engine{
		opts:      opts,
		field:     opts.Field,
		arena:     NewArena(),
		history:   NewHistory(opts.HistoryCapacity),
		scheduler: pattern.NewScheduler(opts.Schedule, opts.Seed),
		ctx:       pattern.NewContext(opts.Field, core.Point{}),
		queue:     queue,
		router:    event.NewRouter(queue),
		logger:    opts.Logger,
	}
	e.temporal = NewTemporal(e.history, e.arena.Len)
	e.start()
	return e
}

func (e *Engine) start() {
	e.clock.Reset()
	e.arena.Reset()
	e.history.Reset()
	e.ledger.Reset()
	e.temporal.Reset()
	e.scheduler.Reset(e.opts.Seed)
	e.ctx.Drain()

	e.player = component.NewPlayer(e.field)
	e.player.Lives = e.opts.Lives
	e.input = Input{}
	e.pickups = e.pickups[:0]
	e.nextPickup = 0

	e.survival = 0
	e.over = false
	e.endReason = ""

	e.emit(event.EventRunStarted, nil)
	e.logger.Printf("run started, seed %d", e.opts.Seed)
}

// Reset starts a fresh run with the same seed
func (e *Engine) Reset() {
	e.start()
}

// Reseed starts a fresh run with a new seed
func (e *Engine) Reseed(seed uint64) {
	e.opts.Seed = seed
	e.start()
}

// Register subscribes h to the events it declares
func (e *Engine) Register(h event.Handler) {
	e.router.Register(h)
}

// SetInput replaces the held input
func (e *Engine) SetInput(in Input) {
	e.input = in
}

// Collect applies a power-up as if the player picked it up
func (e *Engine) Collect(p component.PowerUp) {
	if e.over {
		return
	}
	e.collect(p)
}

// Over reports whether the run has ended
func (e *Engine) Over() bool {
	return e.over
}

// Score returns the ledger total
func (e *Engine) Score() int64 {
	return e.ledger.Total()
}

// Survival returns simulated time survived this run
func (e *Engine) Survival() time.Duration {
	return e.survival
}

// Tick advances the simulation by dt and dispatches the events it produced
// No-op once the run has ended
func (e *Engine) Tick(dt time.Duration) {
	if e.over || dt <= 0 {
		return
	}

	now := e.clock.Advance(dt)
	e.survival += dt
	step := float64(dt) / float64(parameter.TickInterval)

	e.expireEffects(now)
	rewinding := e.temporal.Effect() == event.EffectRewind

	if !rewinding {
		e.announceUnlocks()
		e.spawnScheduled()
		e.dropPowerUp()
	}

	if e.temporal.Effect() == event.EffectNone {
		e.history.Push(capture(e.clock.Ticks(), e.arena.Entities()))
	}

	scale := e.temporal.Scale()
	if rewinding {
		e.playRewind()
	} else if scale > 0 {
		e.advanceEntities(step * scale)
	}
	e.advancePickups(step * scale)

	e.movePlayer(step)
	e.updateFocus(step)

	if !rewinding {
		e.resolveCollisions()
	}
	e.collectPickups()

	if e.clock.Ticks()%parameter.GrazePruneInterval == 0 {
		e.player.PruneGrazed(e.arena.Alive)
	}

	e.router.DispatchAll()
}

func (e *Engine) expireEffects(now time.Duration) {
	tr := e.temporal.Expire(now)
	if tr.Expired != event.EffectNone {
		e.emit(event.EventEffectExpired, &event.EffectPayload{Effect: tr.Expired})
		e.logger.Printf("effect %s expired", tr.Expired)
	}
	e.addScore(tr.Bonus)
	if tr.Activated != event.EffectNone {
		e.emit(event.EventEffectActivated, &event.EffectPayload{Effect: tr.Activated})
		e.logger.Printf("queued effect %s activated", tr.Activated)
	}
	e.temporal.UpdateTint(now)
}

func (e *Engine) announceUnlocks() {
	for _, k := range e.scheduler.Unlocked(e.survival) {
		e.emit(event.EventKindUnlocked, &event.KindUnlockedPayload{Kind: k})
	}
}

func (e *Engine) spawnScheduled() {
	e.ctx.Player = e.player.Center()
	for _, kind := range e.scheduler.Evaluate(e.survival) {
		rng := core.NewRand(e.scheduler.SpawnSeed())
		for _, ent := range pattern.For(kind).Spawn(e.ctx, rng) {
			e.arena.Insert(ent)
		}
	}
}

func (e *Engine) dropPowerUp() {
	if !e.opts.PowerUps || e.survival < parameter.PowerUpUnlockAfter {
		return
	}
	if !e.scheduler.Chance(parameter.PowerUpSpawnDenominator) {
		return
	}
	rng := core.NewRand(e.scheduler.SpawnSeed())
	e.nextPickup++
	e.pickups = append(e.pickups, component.Pickup{
		ID:   e.nextPickup,
		Kind: component.PowerUp(rng.Intn(int(component.PowerUpCount))),
		Box: core.Rect{
			X: rng.Range(e.field.Left(), e.field.Right()-parameter.PowerUpSize),
			Y: e.field.Top(),
			W: parameter.PowerUpSize,
			H: parameter.PowerUpSize,
		},
	})
}

func (e *Engine) advanceEntities(step float64) {
	e.ctx.Player = e.player.Center()
	allowed := e.field.Inset(parameter.BoundsMargin)
	e.removals = e.removals[:0]

	ents := e.arena.Entities()
	for i := range ents {
		ent := &ents[i]
		switch pattern.Advance(ent, step, e.ctx) {
		case pattern.Continue:
			if !allowed.Contains(ent.Bounds()) {
				e.removals = append(e.removals, removal{ent.ID, event.DespawnOffscreen})
			}
		case pattern.DespawnOffscreen:
			e.removals = append(e.removals, removal{ent.ID, event.DespawnOffscreen})
		case pattern.DespawnConsumed:
			e.removals = append(e.removals, removal{ent.ID, event.DespawnConsumed})
		case pattern.Collided:
			e.removals = append(e.removals, removal{ent.ID, event.DespawnCollided})
		}
	}
	e.applyRemovals()

	// Fragments join after the pass so they first move next tick
	for _, frag := range e.ctx.Drain() {
		e.arena.Insert(frag)
	}
}

func (e *Engine) applyRemovals() {
	for _, r := range e.removals {
		if ent, ok := e.arena.Remove(r.id); ok {
			e.despawned(ent, r.reason)
		}
	}
	e.removals = e.removals[:0]
}

// despawned reports a removal and pays the kind bonus for offscreen and consumed exits
func (e *Engine) despawned(ent component.Entity, reason event.DespawnReason) {
	e.emit(event.EventEntityDespawned, &event.DespawnPayload{Kind: ent.Kind, Reason: reason})
	if reason == event.DespawnOffscreen || reason == event.DespawnConsumed {
		e.addScore(pattern.Bonus(ent.Kind))
	}
}

func (e *Engine) playRewind() {
	snap, ok := e.temporal.RewindStep()
	if !ok {
		return
	}
	for _, rec := range snap.Records {
		if ent := e.arena.Get(rec.ID); ent != nil {
			ent.Shape = rec.Shape.Clone()
		}
	}
}

func (e *Engine) advancePickups(step float64) {
	if step <= 0 {
		return
	}
	kept := e.pickups[:0]
	for _, p := range e.pickups {
		p.Box.Y += parameter.PowerUpFallSpeed * step
		if p.Box.Top() > e.field.Bottom() {
			continue
		}
		kept = append(kept, p)
	}
	e.pickups = kept
}

func (e *Engine) movePlayer(step float64) {
	d := core.Point{X: e.input.DX, Y: e.input.DY}
	if d.Len() > 1 {
		d = d.Normalize()
	}
	speed := parameter.PlayerSpeed
	if e.input.Focus {
		speed *= parameter.PlayerFocusSpeedFactor
	}
	e.player.Move(d.Scale(speed*step), e.field)
}

func (e *Engine) updateFocus(step float64) {
	if e.input.Focus {
		e.player.Focusing = true
		e.player.Charge = min(parameter.PulseMaxCharge, e.player.Charge+parameter.PulseChargePerTick*step)
		return
	}
	if e.player.Focusing {
		e.player.Focusing = false
		e.releasePulse()
	}
}

// releasePulse clears every entity near the player when enough charge was held
func (e *Engine) releasePulse() {
	charge := e.player.Charge
	e.player.Charge = 0
	if charge < parameter.PulseMinCharge {
		return
	}

	radius := parameter.PulseBaseRadius + parameter.PulseRadiusPerCharge*charge
	c := e.player.Center()

	e.removals = e.removals[:0]
	ents := e.arena.Entities()
	for i := range ents {
		if physics.WithinRadius(&ents[i], c, radius) {
			e.removals = append(e.removals, removal{ents[i].ID, event.DespawnPulse})
		}
	}
	cleared := len(e.removals)
	e.applyRemovals()

	e.addScore(int64(cleared) * parameter.ScorePulsePerBullet)
	e.emit(event.EventPulseReleased, &event.PulsePayload{Cleared: cleared, Radius: radius})
}

func (e *Engine) resolveCollisions() {
	hitbox := e.player.Hitbox
	e.removals = e.removals[:0]

	ents := e.arena.Entities()
	for i := range ents {
		ent := &ents[i]
		if physics.CheckCollision(ent, hitbox) {
			e.removals = append(e.removals, removal{ent.ID, event.DespawnCollided})
			continue
		}
		if physics.CheckGraze(ent, hitbox, parameter.GrazeRadius) && e.player.MarkGrazed(ent.ID) {
			e.emit(event.EventGrazed, &event.GrazePayload{Kind: ent.Kind})
			e.addScore(parameter.ScoreGraze)
		}
	}

	// Every colliding entity is removed; hits stop costing lives once the run is over
	for _, r := range e.removals {
		ent, ok := e.arena.Remove(r.id)
		if !ok {
			continue
		}
		e.despawned(ent, event.DespawnCollided)
		if !e.over {
			e.hit(ent.Kind)
		}
	}
	e.removals = e.removals[:0]
}

func (e *Engine) hit(kind component.Kind) {
	switch e.player.TakeHit() {
	case component.HitAbsorbed:
		e.emit(event.EventShieldBroken, &event.CollisionPayload{Kind: kind})
	case component.HitLifeLost:
		e.emit(event.EventLifeLost, &event.LifeLostPayload{Kind: kind, Remaining: e.player.Lives})
	case component.HitFatal:
		e.emit(event.EventLifeLost, &event.LifeLostPayload{Kind: kind, Remaining: 0})
		e.end("lives exhausted")
	}
}

func (e *Engine) end(reason string) {
	e.over = true
	e.endReason = reason
	e.emit(event.EventRunEnded, &event.RunEndedPayload{Reason: reason, Score: e.ledger.Total()})
	e.logger.Printf("run ended: %s, score %d, survived %s", reason, e.ledger.Total(), e.survival)
}

func (e *Engine) collectPickups() {
	if e.over {
		return
	}
	kept := e.pickups[:0]
	for _, p := range e.pickups {
		if physics.Overlaps(p.Box, e.player.Hitbox) {
			e.collect(p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	e.pickups = kept
}

func (e *Engine) collect(p component.PowerUp) {
	e.emit(event.EventPowerUpCollected, &event.PowerUpPayload{PowerUp: p})

	var effect event.EffectKind
	switch p {
	case component.PowerUpShield:
		e.player.AddShield()
		return
	case component.PowerUpFreeze:
		effect = event.EffectFreeze
	case component.PowerUpSlow:
		effect = event.EffectSlowMotion
	case component.PowerUpRewind:
		effect = event.EffectRewind
	default:
		return
	}

	payload := &event.EffectPayload{Effect: effect}
	switch e.temporal.Request(effect, e.clock.Now()) {
	case Activated:
		e.emit(event.EventEffectActivated, payload)
		e.logger.Printf("effect %s activated", effect)
	case Queued:
		e.emit(event.EventEffectQueued, payload)
	case Rejected:
		e.emit(event.EventEffectRejected, payload)
	}
}

func (e *Engine) addScore(delta int64) {
	if e.ledger.Add(delta) {
		e.emit(event.EventScored, &event.ScorePayload{Delta: delta, Total: e.ledger.Total()})
	}
}

func (e *Engine) emit(t event.EventType, payload any) {
	e.queue.Push(event.GameEvent{Type: t, Payload: payload, Tick: e.clock.Ticks()})
}
