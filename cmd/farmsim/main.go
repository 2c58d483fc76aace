// Command farmsim runs one headless match between two local policies and
// prints the day-by-day log. Useful for tuning the rule table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"harvestduel/internal/adapter/config"
	"harvestduel/internal/adapter/decision/randomized"
	"harvestduel/internal/app/match"
	"harvestduel/internal/domain/farming"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for weather, trends, and both policies")
	days := flag.Int("days", 0, "override match length in days (0 keeps the rule table value)")
	rulesPath := flag.String("rules", "", "path to a YAML rule table (empty uses defaults)")
	quiet := flag.Bool("quiet", false, "print only the final verdict")
	flag.Parse()

	rules := farming.DefaultRules()
	if *rulesPath != "" {
		loaded, err := config.LoadRules(*rulesPath)
		if err != nil {
			log.Fatalf("load rules: %v", err)
		}
		rules = loaded
	}
	if *days > 0 {
		rules.TotalDays = *days
	}
	if err := rules.Validate(); err != nil {
		log.Fatalf("invalid rules: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := match.Driver{
		Rules:   rules,
		Player1: randomized.New(rules, *seed),
		Player2: randomized.New(rules, *seed+1),
		Rand:    rand.New(rand.NewSource(*seed)),
		Sink: func(snap match.DaySnapshot) {
			if *quiet || snap.GameOver {
				return
			}
			for _, line := range snap.DayLog {
				fmt.Println(line)
			}
		},
	}

	final, err := driver.Run(ctx)
	if err != nil {
		log.Fatalf("match aborted: %v", err)
	}

	fmt.Printf("Final scores after %d days: Player 1 = %d, Player 2 = %d\n",
		rules.TotalDays, final.Player1Score, final.Player2Score)
	fmt.Printf("Winner: %s\n", final.Winner)
}
