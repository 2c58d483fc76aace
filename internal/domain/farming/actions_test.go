package farming

import "testing"

func TestParseAction_Valid(t *testing.T) {
	cases := []struct {
		name string
		req  ActionRequest
		want Action
	}{
		{
			name: "plant",
			req:  ActionRequest{Name: "Plant", Parameters: []string{"Wheat", "1"}},
			want: Action{Kind: ActionPlant, Crop: "Wheat", PlotIndex: 0},
		},
		{
			name: "harvest",
			req:  ActionRequest{Name: "Harvest", Parameters: []string{"3"}},
			want: Action{Kind: ActionHarvest, PlotIndex: 2},
		},
		{
			name: "buy upgrade",
			req:  ActionRequest{Name: "Buy", Parameters: []string{"Irrigation"}},
			want: Action{Kind: ActionBuy, Item: "Irrigation"},
		},
		{
			name: "buy with ignored quantity",
			req:  ActionRequest{Name: "Buy", Parameters: []string{"Plot", "1"}},
			want: Action{Kind: ActionBuy, Item: "Plot"},
		},
		{
			name: "sell defaults to local",
			req:  ActionRequest{Name: "Sell", Parameters: []string{"Wheat", "10"}},
			want: Action{Kind: ActionSell, Crop: "Wheat", Amount: 10, Market: MarketLocal},
		},
		{
			name: "sell global",
			req:  ActionRequest{Name: "Sell", Parameters: []string{"Corn", "2", "global"}},
			want: Action{Kind: ActionSell, Crop: "Corn", Amount: 2, Market: MarketGlobal},
		},
		{
			name: "rest",
			req:  ActionRequest{Name: "Rest"},
			want: Action{Kind: ActionRest},
		},
		{
			name: "rest with empty parameter from Rest()",
			req:  ActionRequest{Name: "Rest", Parameters: []string{""}},
			want: Action{Kind: ActionRest},
		},
		{
			name: "maintenance",
			req:  ActionRequest{Name: "Maintenance", Parameters: []string{"water", "2"}},
			want: Action{Kind: ActionMaintenance, Maintenance: MaintainWater, PlotIndex: 1},
		},
		{
			name: "cooperative",
			req:  ActionRequest{Name: "BuyCooperative", Parameters: []string{"Irrigation Network"}},
			want: Action{Kind: ActionBuyCooperative, Upgrade: "Irrigation Network"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			act, res := ParseAction(tc.req)
			if !res.OK {
				t.Fatalf("parse failed: %+v", res)
			}
			if act != tc.want {
				t.Fatalf("parsed = %+v, want %+v", act, tc.want)
			}
		})
	}
}

func TestParseAction_Rejections(t *testing.T) {
	cases := []struct {
		name string
		req  ActionRequest
		code FailureCode
	}{
		{"unknown name", ActionRequest{Name: "Dance"}, FailUnknownActionName},
		{"empty name", ActionRequest{}, FailUnknownActionName},
		{"plant arity", ActionRequest{Name: "Plant", Parameters: []string{"Wheat"}}, FailMalformedParameters},
		{"plant bad index", ActionRequest{Name: "Plant", Parameters: []string{"Wheat", "one"}}, FailMalformedParameters},
		{"harvest arity", ActionRequest{Name: "Harvest"}, FailMalformedParameters},
		{"sell zero amount", ActionRequest{Name: "Sell", Parameters: []string{"Wheat", "0"}}, FailMalformedParameters},
		{"sell negative amount", ActionRequest{Name: "Sell", Parameters: []string{"Wheat", "-3"}}, FailMalformedParameters},
		{"sell bad market", ActionRequest{Name: "Sell", Parameters: []string{"Wheat", "1", "intergalactic"}}, FailMalformedParameters},
		{"rest with parameter", ActionRequest{Name: "Rest", Parameters: []string{"now"}}, FailMalformedParameters},
		{"maintenance unknown kind", ActionRequest{Name: "Maintenance", Parameters: []string{"paint", "1"}}, FailMalformedParameters},
		{"cooperative arity", ActionRequest{Name: "BuyCooperative"}, FailMalformedParameters},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, res := ParseAction(tc.req)
			if res.OK {
				t.Fatalf("expected rejection")
			}
			if res.Code != tc.code {
				t.Fatalf("code = %s, want %s", res.Code, tc.code)
			}
		})
	}
}

func TestActionRequest_String(t *testing.T) {
	req := ActionRequest{Name: "Plant", Parameters: []string{"Wheat", "1"}}
	if got := req.String(); got != "Plant(Wheat, 1)" {
		t.Fatalf("String() = %q", got)
	}
	empty := ActionRequest{}
	if got := empty.String(); got != "(none)()" {
		t.Fatalf("String() = %q", got)
	}
}
