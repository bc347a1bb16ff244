package builder

import (
	"math/rand"
	"testing"
)

// TestNewBuilderConfig_Defaults checks the zero-option configuration.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.amplitude != defaultAmplitude || cfg.freqStart != defaultFreqStart || cfg.freqEnd != defaultFreqEnd {
		t.Errorf("default chirp: got A=%v f0=%v f1=%v", cfg.amplitude, cfg.freqStart, cfg.freqEnd)
	}
	if cfg.priceStart != defaultPriceStart || cfg.steps != defaultSteps {
		t.Errorf("default price model: got S0=%v steps=%d", cfg.priceStart, cfg.steps)
	}
}

// TestRNGOptions verifies WithSeed reproducibility and that later options win.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	if a.rng.Int63() != b.rng.Int63() {
		t.Error("WithSeed(42): streams diverged")
	}

	shared := rand.New(rand.NewSource(7))
	cfg := newBuilderConfig(WithSeed(1), WithRand(shared))
	if cfg.rng != shared {
		t.Error("WithRand after WithSeed: expected shared rng to win")
	}
	if got := rngFrom(cfg, 99); got != shared {
		t.Error("rngFrom: expected configured rng")
	}
	if got := rngFrom(newBuilderConfig(), 99); got == nil {
		t.Error("rngFrom: expected seeded fallback")
	}
}

// TestOptionPanics checks that meaningless option values are rejected.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"nil rand":       func() { WithRand(nil) },
		"zero amplitude": func() { WithAmplitude(0) },
		"zero sweep":     func() { WithSweep(0, 0.1) },
		"negative noise": func() { WithNoise(-1) },
		"zero price":     func() { WithPriceModel(0, 0, 0.1) },
		"zero steps":     func() { WithIntradaySteps(0) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		})
	}
}
