package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScenarioRecordsSteps(t *testing.T) {
	path := writeScenarioFixture(t, `-- Setup
local scene = Scenario.new("climb")
scene:players(2)

-- First lap
scene:turn{pawn = "P0", roll = 1, answer = true}
scene:excite{pawn = 1}
scene:expect{pawn = "P0", ring = 0, tile = 0, points = 1, exited = false}

return scene
`)

	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "climb" {
		t.Fatalf("name = %q, want climb", scenario.Name)
	}
	if len(scenario.Steps) != 4 {
		t.Fatalf("steps = %d, want %d", len(scenario.Steps), 4)
	}

	kinds := []string{"players", "turn", "excite", "expect"}
	for i, kind := range kinds {
		if scenario.Steps[i].Kind != kind {
			t.Fatalf("step %d kind = %q, want %q", i, scenario.Steps[i].Kind, kind)
		}
	}
	if scenario.Steps[0].Args["count"] != 2 {
		t.Fatalf("players count = %v, want 2", scenario.Steps[0].Args["count"])
	}
	turn := scenario.Steps[1].Args
	if turn["pawn"] != "P0" || turn["roll"] != 1 || turn["answer"] != true {
		t.Fatalf("turn args = %v", turn)
	}
	if scenario.Steps[2].Args["pawn"] != 1 {
		t.Fatalf("excite pawn = %v, want 1", scenario.Steps[2].Args["pawn"])
	}
	if scenario.Steps[3].Args["exited"] != false {
		t.Fatalf("expect exited = %v, want false", scenario.Steps[3].Args["exited"])
	}
}

func TestLoadScenarioSupportsChaining(t *testing.T) {
	scenario, err := LoadScenario("chain", `
return Scenario.new():players(1):turn{pawn = "P0", roll = 2}:expect{pawn = "P0", tile = 1}
`)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "chain" {
		t.Fatalf("name = %q, want chain", scenario.Name)
	}
	if len(scenario.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(scenario.Steps))
	}
}

func TestLoadScenarioDefaultsNameToFile(t *testing.T) {
	path := writeScenarioFixture(t, `return Scenario.new()`)
	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "scenario" {
		t.Fatalf("name = %q, want scenario", scenario.Name)
	}
}

func TestLoadScenarioFractionalNumbers(t *testing.T) {
	scenario, err := LoadScenario("fraction", `return Scenario.new():turn{pawn = 0, roll = 1.5}`)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Steps[0].Args["roll"] != 1.5 {
		t.Fatalf("roll = %v, want 1.5", scenario.Steps[0].Args["roll"])
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "syntax error", source: `return Scenario.new(`},
		{name: "runtime error", source: `error("boom")`},
		{name: "wrong return", source: `return 42`},
		{name: "missing table", source: `return Scenario.new():turn(3)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScenario(tt.name, tt.source); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadScenarioFromMissingFile(t *testing.T) {
	if _, err := LoadScenarioFromFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func writeScenarioFixture(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.lua")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}
