package scrollfx

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	cfg, err := LoadConfig([]byte("marquee:\n  speed: 2.5\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Marquee.Speed != 2.5 {
		t.Errorf("Speed = %f, want 2.5", cfg.Marquee.Speed)
	}
	// Unnamed fields keep their defaults.
	if cfg.Marquee.PaddingAfterLast != DefaultPadding {
		t.Errorf("PaddingAfterLast = %f, want default %f", cfg.Marquee.PaddingAfterLast, DefaultPadding)
	}
	if cfg.Scroll.Lerp != 0.1 {
		t.Errorf("Lerp = %f, want default 0.1", cfg.Scroll.Lerp)
	}
}

func TestLoadConfigRejectsBadSpeed(t *testing.T) {
	_, err := LoadConfig([]byte("marquee:\n  speed: -1\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigRejectsBadLerp(t *testing.T) {
	_, err := LoadConfig([]byte("scroll:\n  lerp: 1.5\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigRejectsReversedRange(t *testing.T) {
	_, err := LoadConfig([]byte("scroll:\n  min: 500\n  max: 100\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig([]byte("marquee: ["))
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.yaml")
	data := []byte("marquee:\n  speed: 0.5\n  gap: 12\nscroll:\n  max: 2400\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Marquee.Speed != 0.5 || cfg.Marquee.Gap != 12 || cfg.Scroll.Max != 2400 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMarqueeConfigOptions(t *testing.T) {
	m := MarqueeConfig{Speed: 2, PaddingAfterLast: 15, Repeat: 3}
	opts := m.Options()
	if opts.Speed != 2 || opts.PaddingAfterLast != 15 || opts.Repeat != 3 {
		t.Errorf("Options = %+v", opts)
	}
}

func TestScrollConfigScroller(t *testing.T) {
	s := ScrollConfig{Min: 100, Max: 900, Lerp: 0.2}.Scroller()
	if s.Min != 100 || s.Max != 900 || s.Lerp != 0.2 {
		t.Errorf("scroller = %+v", s)
	}
	if math.Abs(s.Value()-100) > 1e-9 {
		t.Errorf("Value = %f, want to start at Min", s.Value())
	}
}

func TestConfigDrivesLoop(t *testing.T) {
	cfg, err := LoadConfig([]byte("marquee:\n  speed: 2\n  paddingAfterLast: 10\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	items := []*Node{NewBox("a", 50, 20)}
	tl, err := Loop(items, cfg.Marquee.Options())
	if err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if math.Abs(tl.Duration()-0.3) > 1e-9 {
		t.Errorf("Duration = %f, want 0.3", tl.Duration())
	}
}
