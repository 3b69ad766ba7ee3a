package engine

import (
	"fmt"
	"strings"

	"github.com/arvindrk/eatdecider/internal/models"
)

// candidate is an item that survived the hard-constraint filter, with its
// priced fees and (when intent fields were supplied) relevance attached.
type candidate struct {
	item      models.Item
	fees      models.FeeBreakdown
	relevance float64
	hasIntent bool
}

// eliminations counts why items were dropped, so an empty result can be
// explained instead of silently relaxed.
type eliminations struct {
	budget  int
	veg     int
	eta     int
	oil     int
	query   int
	invalid int
}

func (el eliminations) note() string {
	var reasons []string
	if el.budget > 0 {
		reasons = append(reasons, fmt.Sprintf("%d over budget", el.budget))
	}
	if el.veg > 0 {
		reasons = append(reasons, fmt.Sprintf("%d not vegetarian", el.veg))
	}
	if el.eta > 0 {
		reasons = append(reasons, fmt.Sprintf("%d past your ETA limit", el.eta))
	}
	if el.oil > 0 {
		reasons = append(reasons, fmt.Sprintf("%d too oily", el.oil))
	}
	if el.query > 0 {
		reasons = append(reasons, fmt.Sprintf("%d unrelated to your craving", el.query))
	}
	if len(reasons) == 0 {
		return "No items available. The catalog may be empty."
	}
	return "No items satisfy your constraints: " + strings.Join(reasons, ", ") +
		". Try raising the budget or ETA limit."
}

// filterCandidates applies the hard constraints and the authoritative
// query gate. Hard constraints remove items outright; they are never
// down-weighted. Items the fee calculator refuses to price are skipped
// rather than failing the whole request.
func (e *Engine) filterCandidates(items []models.Item, cons models.Constraints) ([]candidate, eliminations) {
	hasIntent := cons.Query != "" || cons.Location != ""
	var kept []candidate
	var el eliminations

	for _, item := range items {
		fees, err := e.fees.Breakdown(item, cons)
		if err != nil {
			e.logger.Warn().Str("item_id", item.ID).Err(err).Msg("skipping unpriceable catalog item")
			el.invalid++
			continue
		}

		switch {
		case fees.Total > cons.Budget:
			el.budget++
			continue
		case cons.VegOnly && !item.Veg:
			el.veg++
			continue
		case item.EtaMin > cons.EtaLimit:
			el.eta++
			continue
		case cons.LowOil && item.OilLevel != models.OilLow:
			el.oil++
			continue
		}

		c := candidate{item: item, fees: fees, hasIntent: hasIntent}
		if hasIntent {
			qs := queryScore(cons.Query, item.Cuisine, item.Name, item.Restaurant, item.Tags)
			if cons.Query != "" && qs == 0 {
				// The query is authoritative for intent; location is only advisory.
				el.query++
				continue
			}
			ls := locationScore(cons.Location, item.Zone)
			c.relevance = foldRelevance(cons, qs, ls)
		}
		kept = append(kept, c)
	}
	return kept, el
}

// foldRelevance blends the query and location signals. A lone signal is
// used at full weight.
func foldRelevance(cons models.Constraints, queryScore, locationScore float64) float64 {
	switch {
	case cons.Query != "" && cons.Location != "":
		return 0.7*queryScore + 0.3*locationScore
	case cons.Query != "":
		return queryScore
	default:
		return locationScore
	}
}
