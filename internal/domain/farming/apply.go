package farming

import (
	"fmt"
	"math"
	"strings"
)

type actionHandler func(st *PlayerState, market *SharedMarket, rules *Rules, act Action) Result

func handlerRegistry() map[ActionKind]actionHandler {
	return map[ActionKind]actionHandler{
		ActionPlant:       applyPlant,
		ActionHarvest:     applyHarvest,
		ActionMaintenance: applyMaintenance,
		ActionSell:        applySell,
		ActionBuy:         applyBuy,
		ActionRest:        applyRest,
	}
}

// Apply validates and applies one submitted action for actor. partner is
// touched only by cooperative purchases. State mutates only on success;
// every attempt is appended to the actor's log, and rejections increment the
// invalid-action counter.
func Apply(actor, partner *PlayerState, market *SharedMarket, rules *Rules, req ActionRequest) Result {
	act, res := ParseAction(req)
	if res.OK {
		if act.Kind == ActionBuyCooperative {
			res = applyCooperative(actor, partner, rules, act)
		} else {
			res = handlerRegistry()[act.Kind](actor, market, rules, act)
		}
	}
	actor.RecordAction(fmt.Sprintf("%s: %s", req, res.Message))
	if !res.OK {
		actor.InvalidActionCount++
	}
	return res
}

func applyPlant(st *PlayerState, _ *SharedMarket, rules *Rules, act Action) Result {
	crop, ok := rules.Crops[act.Crop]
	if !ok {
		return malformed(fmt.Sprintf("unknown crop %q", act.Crop))
	}
	if act.PlotIndex < 0 || act.PlotIndex >= len(st.Plots) {
		return reject(FailInvalidPlot, fmt.Sprintf("Invalid plot number. You have %d plot(s).", len(st.Plots)))
	}
	plot := &st.Plots[act.PlotIndex]
	if !plot.Vacant() {
		return reject(FailPlotOccupied, fmt.Sprintf("Plot %d is not vacant", act.PlotIndex+1))
	}
	if st.Money < crop.Cost {
		return reject(FailInsufficientFunds, "Insufficient funds for planting")
	}
	energyCost := rules.PlantEnergy[act.Crop]
	if st.Energy < energyCost {
		return reject(FailInsufficientEnergy, "Insufficient energy for planting")
	}

	st.Money -= crop.Cost
	st.Energy -= energyCost
	plot.Crop = &Crop{Kind: act.Crop, PlantedOnDay: st.Day, GrowthProgress: 0, Quality: 1.0}
	plot.SoilQuality = math.Max(0, plot.SoilQuality-rules.Soil.DepletionRate)
	return succeed(fmt.Sprintf("Planted %s in plot %d", act.Crop, act.PlotIndex+1))
}

func applyHarvest(st *PlayerState, _ *SharedMarket, rules *Rules, act Action) Result {
	if act.PlotIndex < 0 || act.PlotIndex >= len(st.Plots) {
		return reject(FailInvalidPlot, fmt.Sprintf("Invalid plot number. You have %d plot(s).", len(st.Plots)))
	}
	plot := &st.Plots[act.PlotIndex]
	if plot.Vacant() {
		return reject(FailNoCropPresent, fmt.Sprintf("No crop to harvest in plot %d", act.PlotIndex+1))
	}
	crop := plot.Crop
	if !crop.Mature() {
		return reject(FailCropNotMature, "Crop not ready for harvest")
	}
	energyCost := rules.HarvestEnergy[crop.Kind]
	if st.Energy < energyCost {
		return reject(FailInsufficientEnergy, "Insufficient energy for harvesting")
	}

	st.Energy -= energyCost
	rule := rules.Crops[crop.Kind]
	weatherFactor := rules.WeatherEffects[st.Weather].Yield
	soilFactor := 1 + (plot.SoilQuality-1)*rules.Soil.YieldFactor
	yield := int(math.Floor(float64(rule.BaseYield) * weatherFactor * soilFactor * crop.Quality))
	if yield < 0 {
		yield = 0
	}
	st.HarvestedCrops[crop.Kind] += yield
	plot.Crop = nil
	return succeed(fmt.Sprintf("Harvested %d %s from plot %d", yield, crop.Kind, act.PlotIndex+1))
}

func applyMaintenance(st *PlayerState, _ *SharedMarket, rules *Rules, act Action) Result {
	if act.PlotIndex < 0 || act.PlotIndex >= len(st.Plots) {
		return reject(FailInvalidPlot, fmt.Sprintf("Invalid plot number. You have %d plot(s).", len(st.Plots)))
	}
	energyCost := rules.MaintainEnergy[act.Maintenance]
	if st.Energy < energyCost {
		return reject(FailInsufficientEnergy, "Insufficient energy for maintenance")
	}

	st.Energy -= energyCost
	plot := &st.Plots[act.PlotIndex]
	plot.SoilQuality = math.Min(1.0, plot.SoilQuality+rules.Soil.MaintenanceImprovement)
	if plot.Crop != nil {
		plot.Crop.Quality *= maintenanceQualityFactor
	}
	return succeed(fmt.Sprintf("Performed %s maintenance on plot %d", act.Maintenance, act.PlotIndex+1))
}

// maintenanceQualityFactor is the fixed crop quality improvement applied when
// maintaining an occupied plot.
const maintenanceQualityFactor = 1.1

func applySell(st *PlayerState, market *SharedMarket, rules *Rules, act Action) Result {
	if _, ok := rules.Crops[act.Crop]; !ok {
		return malformed(fmt.Sprintf("unknown crop %q", act.Crop))
	}
	if st.HarvestedCrops[act.Crop] < act.Amount {
		return reject(FailInsufficientCrops, "Insufficient crops for sale")
	}
	energyCost := rules.TradeEnergy[act.Market]
	if st.Energy < energyCost {
		return reject(FailInsufficientEnergy, "Insufficient energy for trading")
	}

	st.Energy -= energyCost
	total := SaleTotal(market, rules, act.Crop, act.Amount, act.Market)
	st.Money += total
	st.HarvestedCrops[act.Crop] -= act.Amount
	market.RecordSale(act.Crop, act.Amount)
	return succeed(fmt.Sprintf("Sold %d %s for %d money in the %s market", act.Amount, act.Crop, total, act.Market))
}

func applyBuy(st *PlayerState, _ *SharedMarket, rules *Rules, act Action) Result {
	if strings.EqualFold(act.Item, "plot") {
		cost := rules.PlotCost(len(st.Plots))
		if st.Money < cost {
			return reject(FailInsufficientFunds, fmt.Sprintf("Insufficient funds to buy a new plot. Cost: %d, Available: %d", cost, st.Money))
		}
		st.Money -= cost
		st.Plots = append(st.Plots, NewPlot())
		return succeed(fmt.Sprintf("Purchased a new plot for %d. Total plots: %d", cost, len(st.Plots)))
	}

	if _, coop := rules.CooperativeUpgrades[act.Item]; coop {
		return reject(FailInvalidUpgrade, "Cooperative upgrades can only be purchased through a separate action")
	}

	upgrade, ok := rules.Upgrades[act.Item]
	if !ok {
		return reject(FailInvalidUpgrade, fmt.Sprintf("Unknown item to buy: %s", act.Item))
	}
	if st.HasUpgrade(act.Item) {
		return reject(FailAlreadyOwned, "Upgrade already purchased")
	}
	if st.Money < upgrade.Cost {
		return reject(FailInsufficientFunds, "Insufficient money for upgrade")
	}
	st.Money -= upgrade.Cost
	st.Upgrades = append(st.Upgrades, act.Item)
	return succeed(fmt.Sprintf("Purchased %s upgrade", act.Item))
}

func applyRest(st *PlayerState, _ *SharedMarket, rules *Rules, _ Action) Result {
	st.Energy = min(st.Energy+rules.EnergyRegenPerDay, rules.MaxEnergy)
	return succeed("Rested and regained some energy")
}

// applyCooperative debits both players half the cost and grants both the
// upgrade. Both preconditions are checked before either state is touched, so
// a failure leaves both players exactly as they were.
func applyCooperative(actor, partner *PlayerState, rules *Rules, act Action) Result {
	upgrade, ok := rules.CooperativeUpgrades[act.Upgrade]
	if !ok {
		return reject(FailInvalidUpgrade, "Invalid cooperative upgrade")
	}
	if actor.HasUpgrade(act.Upgrade) || partner.HasUpgrade(act.Upgrade) {
		return reject(FailAlreadyOwned, "Upgrade already purchased")
	}
	half := upgrade.Cost / 2
	if actor.Money < half || partner.Money < half {
		return reject(FailInsufficientFunds, "Insufficient funds for cooperative upgrade")
	}

	actor.Money -= half
	partner.Money -= half
	actor.Upgrades = append(actor.Upgrades, act.Upgrade)
	partner.Upgrades = append(partner.Upgrades, act.Upgrade)
	return succeed(fmt.Sprintf("Purchased cooperative upgrade: %s", act.Upgrade))
}
