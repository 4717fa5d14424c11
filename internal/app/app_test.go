package app_test

import (
	"testing"

	"wagecalc/internal/app"
	"wagecalc/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Policy != "failfast" {
		t.Fatalf("default policy: %q", cfg.Policy)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("default logging config: %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("WAGECALC_POLICY", "accumulate")

	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Policy != "accumulate" {
		t.Fatalf("policy override ignored: %q", cfg.Policy)
	}
}

func TestBuild_PolicyReachesComposer(t *testing.T) {
	in := domain.RawInput{Month: "2022-13", Hours: "hundred", Rate: "thirty"}

	fast, err := app.Build(app.Config{Policy: "failfast"})
	if err != nil {
		t.Fatalf("build failfast: %v", err)
	}
	if got := fast.Composer.Compose(in).Errs(); len(got) != 1 {
		t.Fatalf("failfast should report one error, got %d", len(got))
	}

	all, err := app.Build(app.Config{Policy: "accumulate"})
	if err != nil {
		t.Fatalf("build accumulate: %v", err)
	}
	if got := all.Composer.Compose(in).Errs(); len(got) != 3 {
		t.Fatalf("accumulate should report three errors, got %d", len(got))
	}
}

func TestBuild_RejectsUnknownPolicy(t *testing.T) {
	if _, err := app.Build(app.Config{Policy: "lenient"}); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
