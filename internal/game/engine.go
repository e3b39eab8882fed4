// Package game implements the snake engine: body geometry, food placement,
// collision detection, scoring and speed scaling. Pure state and
// transition logic, with no input handling, rendering or I/O.
package game

import (
	"math"
	"math/rand"

	"github.com/imjvdn/vision-snake/internal/config"
	"github.com/imjvdn/vision-snake/internal/core"
)

// Outcome reports what happened during one engine tick.
type Outcome struct {
	AteFood  bool
	Collided bool
}

// Engine owns the snake body, the food and the score. The body is a
// trailing-path approximation of the fingertip's recent trajectory: a new
// head is inserted every tick and the tail trimmed unless growth is owed.
type Engine struct {
	cfg  config.EngineConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	body   []core.Point // head at index 0
	vel    core.Point   // last movement vector, used to coast
	food   core.Point
	pulse  float64 // food pulse phase, rendering only
	score  int
	growth int // pending tail-retention ticks owed from food
	eaten  int
	peak   int
	ticks  int
}

// New creates an engine with the given tunables. Call Reset before use.
func New(cfg config.EngineConfig, diff config.DifficultyConfig) *Engine {
	return &Engine{
		cfg:  cfg,
		diff: config.NewDifficultyManager(diff),
	}
}

// Reset returns the engine to its initial state: a single-segment body at
// the playfield center, zero score, zero growth, fresh food off the body.
func (e *Engine) Reset(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.body = []core.Point{{X: e.cfg.PlayfieldW / 2, Y: e.cfg.PlayfieldH / 2}}
	e.vel = core.Point{}
	e.score = 0
	e.growth = 0
	e.eaten = 0
	e.peak = 1
	e.ticks = 0
	e.pulse = 0
	e.placeFood()
}

// Step advances the engine by one tick. target is the fingertip in
// playfield coordinates, nil when no hand is tracked; the snake then
// coasts along its last movement vector. Nothing here ever fails: bad
// input degrades to a no-op or a coast.
func (e *Engine) Step(target *core.Point) Outcome {
	if len(e.body) == 0 {
		return Outcome{}
	}
	e.ticks++
	e.pulse += 0.2

	head := e.body[0]
	var newHead core.Point
	if target != nil {
		t := core.ClampPoint(*target, e.cfg.PlayfieldW, e.cfg.PlayfieldH)
		newHead = core.StepToward(head, t, e.stepCap())
		e.vel = newHead.Sub(head)
	} else {
		// Coast: repeat the last movement vector, staying in bounds.
		newHead = core.ClampPoint(head.Add(e.vel), e.cfg.PlayfieldW, e.cfg.PlayfieldH)
		e.vel = newHead.Sub(head)
	}

	e.body = append([]core.Point{newHead}, e.body...)

	if e.growth > 0 {
		e.growth--
	} else if len(e.body) > 1 {
		e.body = e.body[:len(e.body)-1]
	}
	if len(e.body) > e.peak {
		e.peak = len(e.body)
	}

	// Collision priority: food first, and an eat tick never also checks
	// self collision, otherwise the burst of growth around the food
	// would fake a game over.
	if core.Dist(newHead, e.food) <= e.cfg.CollisionRadius {
		e.score += e.cfg.PointsPerFood
		e.growth += e.cfg.GrowthPerFood
		e.eaten++
		e.placeFood()
		return Outcome{AteFood: true}
	}

	if e.selfCollided(newHead) {
		return Outcome{Collided: true}
	}
	return Outcome{}
}

// selfCollided tests the head against the body. Short snakes are exempt:
// dense sampling at low length keeps recent head positions within the
// collision radius of each other. The head and its adjacent segments are
// skipped for the same reason.
func (e *Engine) selfCollided(head core.Point) bool {
	if len(e.body) < e.cfg.MinSelfLen {
		return false
	}
	for i := 1 + e.cfg.ExemptSegments; i < len(e.body); i++ {
		if core.Dist(head, e.body[i]) <= e.cfg.CollisionRadius {
			return true
		}
	}
	return false
}

// stepCap returns the current per-tick movement cap in pixels.
func (e *Engine) stepCap() float64 {
	return e.diff.StepCap(e.cfg.BaseStep, e.cfg.MaxStep, e.score, e.ticks)
}

// placeFood replaces the food with a fresh point not overlapping the
// body: uniform samples inside the margin bounds, rejected while within
// the collision radius of any segment, bounded attempts, then an
// unconstrained fallback so placement always terminates.
func (e *Engine) placeFood() {
	attempts := e.cfg.PlaceAttempts
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		p := e.randomFoodPoint()
		if !e.nearBody(p) {
			e.food = p
			return
		}
	}
	e.food = e.randomFoodPoint()
}

// randomFoodPoint samples a uniform point inside the margin bounds.
// Degenerate playfields (margin wider than the field) collapse to the
// center rather than panicking.
func (e *Engine) randomFoodPoint() core.Point {
	m := e.cfg.FoodMargin
	w := e.cfg.PlayfieldW - 2*m
	h := e.cfg.PlayfieldH - 2*m
	if w <= 0 || h <= 0 {
		return core.Point{X: e.cfg.PlayfieldW / 2, Y: e.cfg.PlayfieldH / 2}
	}
	return core.Point{
		X: m + e.rng.Float64()*w,
		Y: m + e.rng.Float64()*h,
	}
}

// nearBody reports whether p is within the collision radius of any
// body segment.
func (e *Engine) nearBody(p core.Point) bool {
	for _, seg := range e.body {
		if core.Dist(p, seg) <= e.cfg.CollisionRadius {
			return true
		}
	}
	return false
}

// Body returns the snake body, head at index 0. Callers must not mutate.
func (e *Engine) Body() []core.Point {
	return e.body
}

// Head returns the current head position.
func (e *Engine) Head() core.Point {
	return e.body[0]
}

// Food returns the current food position.
func (e *Engine) Food() core.Point {
	return e.food
}

// FoodPulse returns the food's pulse radius offset for rendering.
func (e *Engine) FoodPulse() float64 {
	return 3 * math.Sin(e.pulse)
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// FoodEaten returns how many food items were consumed this session.
func (e *Engine) FoodEaten() int {
	return e.eaten
}

// PeakLen returns the longest body length reached this session.
func (e *Engine) PeakLen() int {
	return e.peak
}

// Len returns the current body length.
func (e *Engine) Len() int {
	return len(e.body)
}

// Bounds returns the playfield dimensions.
func (e *Engine) Bounds() (w, h float64) {
	return e.cfg.PlayfieldW, e.cfg.PlayfieldH
}
