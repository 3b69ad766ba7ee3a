package models

// OilLevel describes how oily a dish is. Catalog data only ever carries
// one of the three levels below.
type OilLevel string

const (
	OilLow    OilLevel = "low"
	OilMedium OilLevel = "medium"
	OilHigh   OilLevel = "high"
)

// Item is a single orderable dish from the catalog. Items are read-mostly:
// the engine never mutates them.
type Item struct {
	ID         string   `json:"id"`
	Restaurant string   `json:"restaurant"`
	Name       string   `json:"name"`
	Cuisine    string   `json:"cuisine"`
	BasePrice  float64  `json:"base_price"`
	Rating     float64  `json:"rating"`   // 0..5
	EtaMin     int      `json:"eta_min"`  // estimated delivery minutes
	Veg        bool     `json:"veg"`
	Spice      float64  `json:"spice"` // 0..5
	OilLevel   OilLevel `json:"oil_level"`
	Tags       []string `json:"tags"`
	Zone       string   `json:"zone"` // serviceable-area label
}

// FeeBreakdown is the all-in price of an item under the current request.
// Derived, never stored. All components are non-negative, so Total is
// always at least BasePrice.
type FeeBreakdown struct {
	BasePrice    float64 `json:"base_price"`
	PackagingFee float64 `json:"packaging_fee"`
	DeliveryFee  float64 `json:"delivery_fee"`
	PlatformFee  float64 `json:"platform_fee"`
	Taxes        float64 `json:"taxes"`
	Total        float64 `json:"total"`
}

// Archetype labels for bundle-mode picks.
const (
	ArchetypeSafe      = "Safe"
	ArchetypeValue     = "Value"
	ArchetypeAdventure = "Adventure"
)

// Pick is one recommendation. Type is set in bundle mode, Rank in
// ranked-list mode.
type Pick struct {
	Type  string       `json:"type,omitempty"`
	Rank  int          `json:"rank,omitempty"`
	Item  Item         `json:"item"`
	Fees  FeeBreakdown `json:"fees"`
	Score float64      `json:"score"`
	Why   string       `json:"why"`
}

// RecommendResponse is the payload for GET /recommend in both modes.
// Note is populated whenever the result count falls short of what the
// caller asked for, explaining why.
type RecommendResponse struct {
	Picks           []Pick `json:"picks"`
	TotalCandidates int    `json:"total_candidates,omitempty"`
	Note            string `json:"note,omitempty"`
}
