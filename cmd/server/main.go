package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"

	"harvestduel/internal/adapter/config"
	"harvestduel/internal/adapter/decision/randomized"
	"harvestduel/internal/adapter/decision/remote"
	httpadapter "harvestduel/internal/adapter/http"
	metricsinmem "harvestduel/internal/adapter/metrics/inmemory"
	gormrepo "harvestduel/internal/adapter/repo/gorm"
	"harvestduel/internal/adapter/repo/memory"
	"harvestduel/internal/app/ports"
	"harvestduel/internal/domain/farming"
)

func main() {
	_ = godotenv.Load()

	rules := mustLoadRules()
	history := buildHistoryRepo()
	kpiRecorder := metricsinmem.NewRecorder()

	h := &httpadapter.Handler{
		Rules:   rules,
		Player1: providerFactoryFromEnv("HARVESTDUEL_PLAYER1", rules),
		Player2: providerFactoryFromEnv("HARVESTDUEL_PLAYER2", rules),
		History: history,
		Metrics: kpiRecorder,
		KPI:     kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("HARVESTDUEL_ADDR"))
	if addr == "" {
		addr = ":8000"
	}

	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("harvestduel server listening on %s", addr)
	s.Spin()
}

func mustLoadRules() *farming.Rules {
	rules := farming.DefaultRules()
	if path := strings.TrimSpace(os.Getenv("HARVESTDUEL_RULES")); path != "" {
		loaded, err := config.LoadRules(path)
		if err != nil {
			log.Fatalf("load rules: %v", err)
		}
		rules = loaded
	}
	if err := rules.Validate(); err != nil {
		log.Fatalf("invalid rules: %v", err)
	}
	return rules
}

func buildHistoryRepo() ports.MatchHistoryRepository {
	dsn := strings.TrimSpace(os.Getenv("HARVESTDUEL_DB_DSN"))
	if dsn == "" {
		log.Println("HARVESTDUEL_DB_DSN not set, match history kept in memory")
		return memory.NewMatchHistoryRepo(memory.NewStore())
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewMatchHistoryRepo(db)
}

// providerFactoryFromEnv wires one player's decision source. <prefix>_POLICY
// selects "random" (default) or "remote"; remote additionally needs
// <prefix>_ENDPOINT.
func providerFactoryFromEnv(prefix string, rules *farming.Rules) httpadapter.ProviderFactory {
	policy := strings.ToLower(strings.TrimSpace(os.Getenv(prefix + "_POLICY")))
	switch policy {
	case "", "random":
		return func() ports.DecisionProvider {
			return randomized.New(rules, seedFromEnv())
		}
	case "remote":
		endpoint := strings.TrimSpace(os.Getenv(prefix + "_ENDPOINT"))
		if endpoint == "" {
			log.Fatalf("%s_POLICY=remote requires %s_ENDPOINT", prefix, prefix)
		}
		return func() ports.DecisionProvider {
			return remote.NewClient(endpoint)
		}
	default:
		log.Fatalf("unknown %s_POLICY %q", prefix, policy)
		return nil
	}
}

func seedFromEnv() int64 {
	v := strings.TrimSpace(os.Getenv("HARVESTDUEL_SEED"))
	if v == "" {
		return time.Now().UnixNano()
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Now().UnixNano()
	}
	return n
}
