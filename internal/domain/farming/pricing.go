package farming

import "math"

// PriceFactor converts the cumulative supply/demand counters into a
// multiplier: every 100 units of net demand move the price by 100%.
// Counters never decay, so heavy selling permanently depresses a crop.
func (m *SharedMarket) PriceFactor(kind CropKind) float64 {
	return 1 + float64(m.Demand[kind]-m.Supply[kind])/100
}

// RecordSale adds sold units to visible supply, raising future supply
// pressure on the crop.
func (m *SharedMarket) RecordSale(kind CropKind, amount int) {
	if amount <= 0 {
		return
	}
	m.Supply[kind] += amount
}

// RecordPurchase adds bought units to visible demand. No action handler
// calls it: purchases intentionally leave the demand counters alone, so
// under the shipped rules net demand only ever falls.
func (m *SharedMarket) RecordPurchase(kind CropKind, amount int) {
	if amount <= 0 {
		return
	}
	m.Demand[kind] += amount
}

// MarketPrice is the per-unit price of a crop before the market-type factor.
func MarketPrice(m *SharedMarket, rules *Rules, kind CropKind) float64 {
	return float64(rules.Crops[kind].BasePrice) * m.PriceFactor(kind)
}

// SaleTotal prices a complete sale on the given channel, floored to whole
// money units.
func SaleTotal(m *SharedMarket, rules *Rules, kind CropKind, amount int, market MarketType) int {
	factor := rules.Market.LocalPriceFactor
	if market == MarketGlobal {
		factor = rules.Market.GlobalPriceFactor
	}
	return int(math.Floor(MarketPrice(m, rules, kind) * factor * float64(amount)))
}
