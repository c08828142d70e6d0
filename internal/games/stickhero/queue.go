package stickhero

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/stickhero/internal/config"
)

// Generator supplies the random dimensions of new platforms.
type Generator interface {
	Gap() float64   // Horizontal distance from the previous platform
	Width() float64 // Width of the new platform
}

// RandGenerator draws gap and width uniformly from half-open ranges.
type RandGenerator struct {
	rng                *rand.Rand
	minGap, maxGap     float64
	minWidth, maxWidth float64
}

// NewRandGenerator creates a generator with a deterministic seed.
func NewRandGenerator(seed int64, cfg config.PlatformsConfig) *RandGenerator {
	return &RandGenerator{
		rng:      rand.New(rand.NewSource(seed)),
		minGap:   cfg.MinGap,
		maxGap:   cfg.MaxGap,
		minWidth: cfg.MinWidth,
		maxWidth: cfg.MaxWidth,
	}
}

// Gap returns a value in [minGap, maxGap).
func (g *RandGenerator) Gap() float64 {
	return g.minGap + g.rng.Float64()*(g.maxGap-g.minGap)
}

// Width returns a value in [minWidth, maxWidth).
func (g *RandGenerator) Width() float64 {
	return g.minWidth + g.rng.Float64()*(g.maxWidth-g.minWidth)
}

// PlatformQueue is the ordered world of platforms, oldest first.
// It always holds at least one platform.
type PlatformQueue struct {
	platforms []Platform
	gen       Generator
	cfg       config.PlatformsConfig
	viewW     float64 // Viewport width; generation stays half of it ahead
	top       float64 // Y of every platform's top edge
	height    float64 // Height of every platform
	originX   float64 // X of the first platform
}

// NewPlatformQueue creates a queue seeded with the two start platforms.
func NewPlatformQueue(gen Generator, cfg config.StickHeroConfig) *PlatformQueue {
	top := cfg.Avatar.OriginY + cfg.Avatar.Height
	q := &PlatformQueue{
		platforms: make([]Platform, 0, 8),
		gen:       gen,
		cfg:       cfg.Platforms,
		viewW:     cfg.World.Width,
		top:       top,
		height:    cfg.World.Height - top,
		originX:   cfg.Avatar.OriginX,
	}
	q.Reset()
	return q
}

// Reset drops every platform and seeds the start layout: one platform under
// the avatar and one fixed target.
func (q *PlatformQueue) Reset() {
	q.platforms = append(q.platforms[:0],
		q.newPlatform(q.originX, q.cfg.FirstWidth),
		q.newPlatform(q.cfg.SecondX, q.cfg.SecondWidth),
	)
}

// SetGenerator swaps the random source used for future platforms.
func (q *PlatformQueue) SetGenerator(gen Generator) {
	q.gen = gen
}

func (q *PlatformQueue) newPlatform(x, width float64) Platform {
	return Platform{
		X:      x,
		Y:      q.top,
		Width:  width,
		Height: q.height,
		Speed:  q.cfg.ScrollSpeed,
	}
}

// Spawn appends a platform one random gap past the last one.
func (q *PlatformQueue) Spawn() {
	last := q.Back()
	gap := q.gen.Gap()
	width := q.gen.Width()
	q.platforms = append(q.platforms, q.newPlatform(last.Right()+gap, width))
}

// Update keeps generation ahead of the avatar and evicts platforms that
// scrolled off the left edge. At most one platform is spawned per call.
func (q *PlatformQueue) Update(avatarX float64) {
	if avatarX+q.viewW/2 > q.Back().X {
		q.Spawn()
	}
	for len(q.platforms) > 1 && q.platforms[0].Gone() {
		q.platforms = slices.Delete(q.platforms, 0, 1)
	}
}

// Scroll moves every platform one tick to the left.
func (q *PlatformQueue) Scroll() {
	for i := range q.platforms {
		q.platforms[i].Scroll()
	}
}

// Supports reports whether any platform holds an avatar spanning [x, x+width].
func (q *PlatformQueue) Supports(x, width, buffer float64) bool {
	for _, p := range q.platforms {
		if p.Supports(x, width, buffer) {
			return true
		}
	}
	return false
}

// Platforms returns the current platforms, oldest first.
// The slice is owned by the queue.
func (q *PlatformQueue) Platforms() []Platform {
	return q.platforms
}

// Len returns the number of platforms.
func (q *PlatformQueue) Len() int {
	return len(q.platforms)
}

// Front returns the oldest platform.
func (q *PlatformQueue) Front() Platform {
	return q.platforms[0]
}

// Back returns the newest platform.
func (q *PlatformQueue) Back() Platform {
	return q.platforms[len(q.platforms)-1]
}

// Draw paints every platform.
func (q *PlatformQueue) Draw(dst Surface) {
	for _, p := range q.platforms {
		p.Draw(dst)
	}
}
