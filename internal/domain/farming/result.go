package farming

// FailureCode classifies why an action was rejected. Rejections are ordinary
// values: they are logged on the player, never raised as Go errors.
type FailureCode string

const (
	FailInvalidPlot         FailureCode = "invalid_plot"
	FailPlotOccupied        FailureCode = "plot_occupied"
	FailNoCropPresent       FailureCode = "no_crop_present"
	FailCropNotMature       FailureCode = "crop_not_mature"
	FailInsufficientFunds   FailureCode = "insufficient_funds"
	FailInsufficientEnergy  FailureCode = "insufficient_energy"
	FailInsufficientCrops   FailureCode = "insufficient_crops"
	FailAlreadyOwned        FailureCode = "already_owned"
	FailInvalidUpgrade      FailureCode = "invalid_upgrade"
	FailUnknownActionName   FailureCode = "unknown_action_name"
	FailMalformedParameters FailureCode = "malformed_parameters"
)

// Result is the outcome of one action attempt. On failure no state was
// mutated except the actor's log and invalid-action counter.
type Result struct {
	OK      bool        `json:"ok"`
	Code    FailureCode `json:"code,omitempty"`
	Message string      `json:"message"`
}

func succeed(message string) Result {
	return Result{OK: true, Message: message}
}

func reject(code FailureCode, message string) Result {
	return Result{OK: false, Code: code, Message: message}
}
