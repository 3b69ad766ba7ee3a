package models

// Constraints holds one request's filtering and scoring inputs. Immutable
// once parsed; the engine never writes to it.
type Constraints struct {
	Budget    float64 `json:"budget"`
	VegOnly   bool    `json:"veg_only"`
	SpicePref float64 `json:"spice"`
	LowOil    bool    `json:"low_oil"`
	Novelty   float64 `json:"novelty"`
	EtaLimit  int     `json:"eta_limit"`
	Query     string  `json:"q,omitempty"`
	Location  string  `json:"place,omitempty"`
	Limit     int     `json:"limit,omitempty"` // >0 switches to ranked-list mode
	UserKey   string  `json:"-"`
}

// RankedMode reports whether the request asked for a ranked top-N list
// instead of the three-pick bundle.
func (c Constraints) RankedMode() bool {
	return c.Limit > 0
}

// Validate checks every field against its documented range. The whole
// request is rejected on the first violation; no partial results.
func (c Constraints) Validate() error {
	if c.Budget <= 0 {
		return &InvalidConstraintError{Field: "budget", Reason: "must be a positive amount"}
	}
	if c.SpicePref < 0 || c.SpicePref > 5 {
		return &InvalidConstraintError{Field: "spice", Reason: "must be between 0 and 5"}
	}
	if c.Novelty < 0 || c.Novelty > 1 {
		return &InvalidConstraintError{Field: "novelty", Reason: "must be between 0 and 1"}
	}
	if c.EtaLimit <= 0 {
		return &InvalidConstraintError{Field: "eta_limit", Reason: "must be a positive number of minutes"}
	}
	if c.Limit < 0 {
		return &InvalidConstraintError{Field: "limit", Reason: "must be at least 1 when supplied"}
	}
	return nil
}
