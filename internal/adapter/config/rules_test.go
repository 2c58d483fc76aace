package config

import (
	"os"
	"path/filepath"
	"testing"
)

const tuningYAML = `
total_days: 60
starting_money: 800
max_energy: 100
energy_regen_per_day: 20
seasons: [Spring, Summer]
season_length_days: 30
weather_types: [Sunny, Rainy]
weather_probabilities:
  Spring: [0.7, 0.3]
  Summer: [0.6, 0.4]
weather_effects:
  Sunny: {growth: 1.0, yield: 1.1, energy: 1.0}
  Rainy: {growth: 1.2, yield: 1.0, energy: 1.2}
crops:
  Wheat: {cost: 10, base_growth_time: 7, base_yield: 5, base_price: 30, hardiness: 0.8}
plant_energy:
  Wheat: 10
harvest_energy:
  Wheat: 15
maintenance_energy:
  water: 5
  weed: 10
  fertilize: 15
trade_energy:
  local: 5
  global: 10
soil:
  depletion_rate: 0.1
  maintenance_improvement: 0.2
  yield_factor: 0.5
market:
  local_price_factor: 1.1
  global_price_factor: 1.3
  max_price_fluctuation: 0.2
  trend_days: 7
upgrades:
  Irrigation: {cost: 500, water_saving: 0.2}
cooperative_upgrades:
  Irrigation Network: {cost: 2000, water_saving: 0.3}
plot_purchase:
  base_cost: 500
  cost_growth_factor: 1.5
action_log_display_count: 10
`

func writeTuning(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}
	return path
}

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules(writeTuning(t, tuningYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := rules.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if rules.TotalDays != 60 {
		t.Fatalf("total days = %d, want 60", rules.TotalDays)
	}
	if rules.StartingMoney != 800 {
		t.Fatalf("starting money = %d, want 800", rules.StartingMoney)
	}
	wheat, ok := rules.Crops["Wheat"]
	if !ok {
		t.Fatalf("wheat missing from crops")
	}
	if wheat.BaseGrowthTime != 7 || wheat.Hardiness != 0.8 {
		t.Fatalf("wheat = %+v", wheat)
	}
	if rules.WeatherEffects["Rainy"].Growth != 1.2 {
		t.Fatalf("rainy effect = %+v", rules.WeatherEffects["Rainy"])
	}
	coop, ok := rules.CooperativeUpgrades["Irrigation Network"]
	if !ok || coop.Cost != 2000 {
		t.Fatalf("cooperative upgrade = %+v ok=%v", coop, ok)
	}
}

func TestLoadRules_InvalidTableFailsValidation(t *testing.T) {
	rules, err := LoadRules(writeTuning(t, "total_days: 0\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := rules.Validate(); err == nil {
		t.Fatalf("expected validation failure for empty table")
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadRules_MalformedYAML(t *testing.T) {
	if _, err := LoadRules(writeTuning(t, "{not yaml")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
