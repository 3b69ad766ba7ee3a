package engine

import (
	"math"
	"sort"
	"time"

	"github.com/arvindrk/eatdecider/internal/models"
)

// subScores are the normalized per-item scoring terms, each in [0,1].
type subScores struct {
	rating         float64
	value          float64
	spiceFit       float64
	spiceAdventure float64
	novelty        float64
	eta            float64
}

// scored pairs a candidate with its sub-scores and one archetype's (or
// the general blend's) composite.
type scored struct {
	candidate
	subs  subScores
	score float64
}

func (e *Engine) subScoresFor(c candidate, cons models.Constraints, history models.UserHistory, now time.Time) subScores {
	var s subScores
	s.rating = clamp01(c.item.Rating / 5)
	s.value = clamp01(1 - c.fees.Total/cons.Budget)
	s.spiceFit = clamp01(1 - math.Abs(c.item.Spice-cons.SpicePref)/5)

	// Adventure favours spicier than the stated preference, within tolerance.
	target := math.Min(5, cons.SpicePref+e.cfg.Scoring.AdventureSpiceLift)
	s.spiceAdventure = clamp01(1 - math.Abs(c.item.Spice-target)/5)

	s.novelty = 1 - recencyPenalty(history[c.item.ID], now, e.cfg.Scoring.NoveltyHalfLifeHours)
	s.eta = clamp01(1 - float64(c.item.EtaMin)/float64(cons.EtaLimit))
	return s
}

// composite blends the sub-scores under one weight set. The novelty
// constraint scales the novelty weight (not whether the term applies);
// weights are renormalized so composites stay comparable in [0,1].
// Relevance, when intent fields were supplied, folds in as a
// multiplicative gate plus a small additive bonus.
func composite(w models.Weights, s subScores, adventure bool, noveltyScale float64, c candidate) float64 {
	spice := s.spiceFit
	if adventure {
		spice = s.spiceAdventure
	}

	wn := w.Novelty * noveltyScale
	total := w.Rating + w.Value + w.Spice + w.Eta + wn
	if total <= 0 {
		return 0
	}
	score := (w.Rating*s.rating + w.Value*s.value + w.Spice*spice + w.Eta*s.eta + wn*s.novelty) / total

	if c.hasIntent {
		score = score*(0.4+0.6*c.relevance) + 0.1*c.relevance
	}
	return score
}

// sortScored orders by composite descending, then by the documented
// tie-break: higher rating, lower all-in total, lexicographic item id.
// The tie-break guarantees reproducible output for identical inputs.
func sortScored(list []scored) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.item.Rating != b.item.Rating {
			return a.item.Rating > b.item.Rating
		}
		if a.fees.Total != b.fees.Total {
			return a.fees.Total < b.fees.Total
		}
		return a.item.ID < b.item.ID
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
