package scenario

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Scenario != "" {
		t.Fatalf("expected empty scenario path, got %q", cfg.Scenario)
	}
	if !cfg.Assertions {
		t.Fatal("expected assertions to default to true")
	}
	if cfg.Verbose {
		t.Fatal("expected verbose to default to false")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("RANDOMNESS_SCENARIO_FILE", "env.lua")
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, []string{"-assert=false", "-verbose"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Scenario != "env.lua" {
		t.Fatalf("scenario = %q, want env.lua", cfg.Scenario)
	}
	if cfg.Assertions || !cfg.Verbose {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestRunRequiresScenario(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil, nil); err == nil {
		t.Fatal("expected error for missing scenario path")
	}
}

func TestRunReplaysScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exit.lua")
	script := `
local scene = Scenario.new("exit")
scene:players(1)
scene:excite{pawn = "P0"}
scene:expect{pawn = "P0", ring = 1, tile = 4}
return scene
`
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Scenario: path, Assertions: true}, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "scenario passed") {
		t.Fatalf("out = %q", out.String())
	}
}

func TestRunReportsFailedExpectation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fail.lua")
	script := `return Scenario.new():players(1):expect{pawn = "P0", points = 3}`
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	if err := Run(context.Background(), Config{Scenario: path, Assertions: true}, nil, nil); err == nil {
		t.Fatal("expected failed expectation")
	}

	var errOut bytes.Buffer
	if err := Run(context.Background(), Config{Scenario: path}, nil, &errOut); err != nil {
		t.Fatalf("log-only run: %v", err)
	}
	if !strings.Contains(errOut.String(), "points = 0, want 3") {
		t.Fatalf("errOut = %q", errOut.String())
	}
}
