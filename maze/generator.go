package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// maxAttempts caps full pipeline restarts before generation is
	// declared a fatal failure.
	maxAttempts = 20
	// adversarialMinDimension is the smallest side supported when
	// adversarial features are requested; the traps need room.
	adversarialMinDimension = 10
)

// ErrGenerationFailed reports that no solvable maze could be produced
// within the attempt cap.
var ErrGenerationFailed = errors.New("maze generation failed")

// Config holds the parameters for a Generator.
type Config struct {
	Width    int
	Height   int
	Strategy CarveStrategy // defaults to CarveDFS
	// Adversarial enables the heuristic-hostile feature generators.
	Adversarial bool
	// Seed seeds the generator's private random source. Zero means seed
	// from the clock. Every generation call owns its own state; nothing
	// ambient is touched.
	Seed int64
}

// Result is the outcome of a successful generation: the immutable
// artifact plus diagnostics about how it was produced.
type Result struct {
	Artifact *Artifact
	// Placement records the chosen endpoints, final path length and the
	// fallback tier that produced them.
	Placement Placement
	// Attempts is the number of full pipeline runs consumed (1 = first
	// try succeeded).
	Attempts int
	// AdversarialFeatures counts features added by the adversarial
	// generators; zero for plain mazes.
	AdversarialFeatures int
}

// Generator runs the maze pipeline: carve, repair, complexity, placement,
// adversarial shaping, final verification. Safe to reuse; not safe for
// concurrent use, each Generator owns a single random source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator validates the configuration and returns a Generator.
// Dimension errors are rejected here, before any generation starts.
func NewGenerator(cfg Config) (*Generator, error) {
	minSide := minDimension
	if cfg.Adversarial {
		minSide = adversarialMinDimension
	}
	if min(cfg.Width, cfg.Height) < minSide {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrDimensionTooSmall, cfg.Width, cfg.Height, minSide, minSide)
	}
	if cfg.Strategy == "" {
		cfg.Strategy = CarveDFS
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}, nil
}

// Generate runs the pipeline, restarting from a fresh carving pass on
// any failure, up to the attempt cap. Localized repair is not guaranteed
// to converge for every adversarial interaction, so retries always start
// over rather than patching a broken grid.
func (gen *Generator) Generate() (*Result, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := gen.generateOnce()
		if err != nil {
			lastErr = err
			continue
		}
		result.Attempts = attempt
		return result, nil
	}
	return nil, fmt.Errorf("%w: no solvable %dx%d maze after %d attempts: %v",
		ErrGenerationFailed, gen.cfg.Width, gen.cfg.Height, maxAttempts, lastErr)
}

func (gen *Generator) generateOnce() (*Result, error) {
	g, err := NewGrid(gen.cfg.Width, gen.cfg.Height)
	if err != nil {
		return nil, err
	}

	if err := carvePerfect(g, gen.rng, gen.cfg.Strategy); err != nil {
		return nil, err
	}
	if err := injectComplexity(g, gen.rng); err != nil {
		return nil, fmt.Errorf("complexity injection: %w", err)
	}

	placement, err := choosePlacement(g, gen.rng)
	if err != nil {
		return nil, fmt.Errorf("placement: %w", err)
	}

	features := 0
	if gen.cfg.Adversarial {
		features, err = injectAdversarial(g, placement.Start, placement.End, gen.rng)
		if err != nil {
			return nil, fmt.Errorf("adversarial shaping: %w", err)
		}
	}

	// Final verification. The adversarial layers may have rerouted the
	// maze, so the path length is recomputed from the mutated grid.
	report, err := Verify(g, placement.Start)
	if err != nil {
		return nil, err
	}
	if !report.Connected() {
		return nil, fmt.Errorf("final verification: %d unreachable cells", len(report.Unreachable))
	}
	pathLen, ok := g.PathLength(placement.Start, placement.End)
	if !ok {
		return nil, fmt.Errorf("final verification: no path from start %v to end %v", placement.Start, placement.End)
	}
	placement.PathLength = pathLen

	// Ideal placements carry a separation guarantee; hold them to a
	// matching path-length floor. Degraded tiers already reported
	// themselves and are accepted as-is.
	if placement.Tier <= TierCorner && pathLen < max(g.Width, g.Height)/2 {
		return nil, fmt.Errorf("final verification: path length %d below floor for %s placement", pathLen, placement.Tier)
	}

	return &Result{
		Artifact:            snapshotArtifact(g, placement),
		Placement:           placement,
		AdversarialFeatures: features,
	}, nil
}
