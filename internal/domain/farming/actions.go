package farming

import (
	"fmt"
	"strconv"
	"strings"
)

type ActionKind string

const (
	ActionPlant          ActionKind = "Plant"
	ActionHarvest        ActionKind = "Harvest"
	ActionBuy            ActionKind = "Buy"
	ActionSell           ActionKind = "Sell"
	ActionRest           ActionKind = "Rest"
	ActionMaintenance    ActionKind = "Maintenance"
	ActionBuyCooperative ActionKind = "BuyCooperative"
)

// ActionRequest is the raw tuple a decision source produces. It is parsed
// into an Action before any state is touched.
type ActionRequest struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
}

func (r ActionRequest) String() string {
	name := r.Name
	if name == "" {
		name = "(none)"
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(r.Parameters, ", "))
}

// Action is the closed tagged union of everything a player may attempt.
// Only the fields for the given Kind are meaningful.
type Action struct {
	Kind        ActionKind
	Crop        CropKind
	PlotIndex   int // 0-based; surfaced as 1-based in requests and messages
	Amount      int
	Market      MarketType
	Maintenance MaintenanceKind
	Item        string // Buy target: upgrade id or "Plot"
	Upgrade     string // BuyCooperative target
}

// ParseAction maps a raw request onto the action union. A non-OK result means
// the name was unknown or the parameter list did not fit the action's arity.
func ParseAction(req ActionRequest) (Action, Result) {
	params := trimParams(req.Parameters)
	switch ActionKind(strings.TrimSpace(req.Name)) {
	case ActionPlant:
		if len(params) != 2 {
			return Action{}, malformed("Plant takes a crop name and a plot number")
		}
		idx, err := parsePlotIndex(params[1])
		if err != nil {
			return Action{}, malformed(err.Error())
		}
		return Action{Kind: ActionPlant, Crop: CropKind(params[0]), PlotIndex: idx}, Result{OK: true}
	case ActionHarvest:
		if len(params) != 1 {
			return Action{}, malformed("Harvest takes a plot number")
		}
		idx, err := parsePlotIndex(params[0])
		if err != nil {
			return Action{}, malformed(err.Error())
		}
		return Action{Kind: ActionHarvest, PlotIndex: idx}, Result{OK: true}
	case ActionBuy:
		// A trailing quantity is tolerated and ignored for plot and
		// upgrade purchases.
		if len(params) != 1 && len(params) != 2 {
			return Action{}, malformed("Buy takes an item name")
		}
		if params[0] == "" {
			return Action{}, malformed("Buy needs an item name")
		}
		return Action{Kind: ActionBuy, Item: params[0]}, Result{OK: true}
	case ActionSell:
		if len(params) != 2 && len(params) != 3 {
			return Action{}, malformed("Sell takes a crop name, an amount, and optionally a market type")
		}
		amount, err := strconv.Atoi(params[1])
		if err != nil || amount <= 0 {
			return Action{}, malformed(fmt.Sprintf("invalid sell amount %q", params[1]))
		}
		market := MarketLocal
		if len(params) == 3 {
			switch MarketType(strings.ToLower(params[2])) {
			case MarketLocal:
				market = MarketLocal
			case MarketGlobal:
				market = MarketGlobal
			default:
				return Action{}, malformed(fmt.Sprintf("unknown market type %q", params[2]))
			}
		}
		return Action{Kind: ActionSell, Crop: CropKind(params[0]), Amount: amount, Market: market}, Result{OK: true}
	case ActionRest:
		if len(params) != 0 {
			return Action{}, malformed("Rest takes no parameters")
		}
		return Action{Kind: ActionRest}, Result{OK: true}
	case ActionMaintenance:
		if len(params) != 2 {
			return Action{}, malformed("Maintenance takes a maintenance type and a plot number")
		}
		kind := MaintenanceKind(strings.ToLower(params[0]))
		switch kind {
		case MaintainWater, MaintainWeed, MaintainFertilize:
		default:
			return Action{}, malformed(fmt.Sprintf("unknown maintenance type %q", params[0]))
		}
		idx, err := parsePlotIndex(params[1])
		if err != nil {
			return Action{}, malformed(err.Error())
		}
		return Action{Kind: ActionMaintenance, Maintenance: kind, PlotIndex: idx}, Result{OK: true}
	case ActionBuyCooperative:
		if len(params) != 1 || params[0] == "" {
			return Action{}, malformed("BuyCooperative takes an upgrade name")
		}
		return Action{Kind: ActionBuyCooperative, Upgrade: params[0]}, Result{OK: true}
	default:
		return Action{}, reject(FailUnknownActionName, fmt.Sprintf("Unknown action type: %s", req.Name))
	}
}

// trimParams drops surrounding whitespace and the single empty parameter a
// zero-argument call like "Rest()" produces in some decision sources.
func trimParams(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		out = append(out, strings.TrimSpace(p))
	}
	if len(out) == 1 && out[0] == "" {
		return nil
	}
	return out
}

func parsePlotIndex(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid plot number %q", raw)
	}
	return n - 1, nil
}

func malformed(message string) Result {
	return reject(FailMalformedParameters, message)
}
