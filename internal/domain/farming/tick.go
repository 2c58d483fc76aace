package farming

import "math"

// Rand is the randomness the day tick consumes. Seeding it fixes the whole
// session, making replays reproducible.
type Rand interface {
	Float64() float64
}

// growthEpsilon absorbs the float residue of summing growthRate/growthTime
// increments so a crop that has accumulated its full growth time counts as
// exactly mature.
const growthEpsilon = 1e-9

// SeasonForDay maps a 1-based day onto the repeating season calendar.
func SeasonForDay(day int, rules *Rules) Season {
	idx := ((day - 1) / rules.SeasonLengthDays) % len(rules.Seasons)
	return rules.Seasons[idx]
}

// DrawWeather makes one weighted draw from the season's weather distribution.
func DrawWeather(season Season, rules *Rules, rng Rand) Weather {
	probs := rules.WeatherProbabilities[season]
	roll := rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if roll < acc {
			return rules.WeatherTypes[i]
		}
	}
	return rules.WeatherTypes[len(rules.WeatherTypes)-1]
}

// AdvanceDay runs the end-of-day transition for both players as one atomic
// step: calendar, a single shared weather draw, energy regeneration, market
// trend refresh, upgrade-effect aggregation, crop growth, and soil depletion.
// Both players always observe the same day, season, and weather afterwards.
func AdvanceDay(p1, p2 *PlayerState, rules *Rules, rng Rand) {
	p1.Day++
	p2.Day++

	season := SeasonForDay(p1.Day, rules)
	p1.Season = season
	p2.Season = season

	// One draw for both players: they farm under the same sky.
	weather := DrawWeather(season, rules, rng)
	p1.Weather = weather
	p2.Weather = weather

	p1.Energy = min(p1.Energy+rules.EnergyRegenPerDay, rules.MaxEnergy)
	p2.Energy = min(p2.Energy+rules.EnergyRegenPerDay, rules.MaxEnergy)

	refreshMarketTrends(p1, rules, rng)
	refreshMarketTrends(p2, rules, rng)

	advancePlayer(p1, rules)
	advancePlayer(p2, rules)
}

// refreshMarketTrends redraws the advisory trend multipliers at the start of
// each trend period. Pricing never reads them; they are surfaced to decision
// sources as-is.
func refreshMarketTrends(st *PlayerState, rules *Rules, rng Rand) {
	if st.Day%rules.Market.TrendDays != 1 {
		return
	}
	fluct := rules.Market.MaxPriceFluctuation
	trends := make(map[CropKind]float64, len(rules.Crops))
	for _, kind := range rules.CropKinds() {
		trends[kind] = (1 - fluct) + rng.Float64()*2*fluct
	}
	st.MarketTrends = trends
}

type upgradeEffects struct {
	waterSaving       float64
	weatherProtection float64
	yieldBoost        float64
	energySaving      float64
}

// aggregateUpgradeEffects sums the effect magnitudes of every owned upgrade,
// looking the id up in both catalogs.
func aggregateUpgradeEffects(st *PlayerState, rules *Rules) upgradeEffects {
	var fx upgradeEffects
	for _, id := range st.Upgrades {
		rule, ok := rules.UpgradeRule(id)
		if !ok {
			continue
		}
		fx.waterSaving += rule.WaterSaving
		fx.weatherProtection += rule.WeatherProtection
		fx.yieldBoost += rule.YieldBoost
		fx.energySaving += rule.EnergySaving
	}
	return fx
}

func advancePlayer(st *PlayerState, rules *Rules) {
	fx := aggregateUpgradeEffects(st, rules)

	for i := range st.Plots {
		plot := &st.Plots[i]
		if plot.Crop != nil {
			growthRate := rules.WeatherEffects[st.Weather].Growth
			if fx.weatherProtection > 0 {
				// Protection shields against bad weather; it never
				// slows good weather down.
				growthRate = math.Max(growthRate, 1.0)
			}
			growthRate *= 1 + fx.waterSaving

			growthTime := rules.Crops[plot.Crop.Kind].BaseGrowthTime
			progress := plot.Crop.GrowthProgress + growthRate/float64(growthTime)
			if progress >= 1.0-growthEpsilon {
				progress = 1.0
			}
			plot.Crop.GrowthProgress = progress

			plot.Crop.Quality *= 1 + fx.yieldBoost
		}
		plot.SoilQuality = math.Max(0, plot.SoilQuality-rules.Soil.DepletionRate)
	}

	if fx.energySaving > 0 {
		// Round, don't truncate: 60 * 1.15 lands just under 69 in floats.
		boosted := int(math.Round(float64(st.Energy) * (1 + fx.energySaving)))
		st.Energy = min(boosted, rules.MaxEnergy)
	}
}
