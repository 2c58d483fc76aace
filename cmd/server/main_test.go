package main

import "testing"

func TestSeedFromEnv_Set(t *testing.T) {
	t.Setenv("HARVESTDUEL_SEED", "42")
	if got := seedFromEnv(); got != 42 {
		t.Fatalf("seedFromEnv()=%d want 42", got)
	}
}

func TestSeedFromEnv_InvalidFallsBackToClock(t *testing.T) {
	t.Setenv("HARVESTDUEL_SEED", "not-a-number")
	if got := seedFromEnv(); got == 0 {
		t.Fatalf("seedFromEnv() returned zero for invalid input")
	}
}

func TestProviderFactoryFromEnv_DefaultsToRandom(t *testing.T) {
	t.Setenv("HARVESTDUEL_PLAYER1_POLICY", "")
	factory := providerFactoryFromEnv("HARVESTDUEL_PLAYER1", nil)
	if factory == nil {
		t.Fatalf("expected a factory for the default policy")
	}
}
