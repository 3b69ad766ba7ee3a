package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/arvindrk/eatdecider/internal/models"
)

// buildBundle picks the highest-composite item per archetype. With three
// or more qualifying items, distinctness is enforced greedily in Safe,
// Value, Adventure order (Safe keeps priority as the default choice and
// later archetypes take their next-best unused candidate). With fewer,
// each archetype simply takes its own best, duplicates allowed, and the
// note explains the overlap.
func (e *Engine) buildBundle(cands []candidate, cons models.Constraints, history models.UserHistory, now time.Time) ([]models.Pick, string) {
	subs := make([]subScores, len(cands))
	for i, c := range cands {
		subs[i] = e.subScoresFor(c, cons, history, now)
	}

	archetypes := []struct {
		label     string
		weights   models.Weights
		adventure bool
	}{
		{models.ArchetypeSafe, e.cfg.Scoring.Safe, false},
		{models.ArchetypeValue, e.cfg.Scoring.Value, false},
		{models.ArchetypeAdventure, e.cfg.Scoring.Adventure, true},
	}

	enforceDistinct := len(cands) >= 3
	used := make(map[string]bool)
	duplicated := false
	var skipped []string
	var picks []models.Pick

	for _, arch := range archetypes {
		var ranked []scored
		for i, c := range cands {
			if arch.adventure && c.item.Rating < e.cfg.Scoring.MinAdventureRating {
				// Never recommend a low-rated item, even as Adventure.
				continue
			}
			ranked = append(ranked, scored{
				candidate: c,
				subs:      subs[i],
				score:     composite(arch.weights, subs[i], arch.adventure, cons.Novelty, c),
			})
		}
		if len(ranked) == 0 {
			skipped = append(skipped, arch.label)
			continue
		}
		sortScored(ranked)

		chosen := ranked[0]
		if enforceDistinct {
			for _, sc := range ranked {
				if !used[sc.item.ID] {
					chosen = sc
					break
				}
			}
		}
		if used[chosen.item.ID] {
			duplicated = true
		}
		used[chosen.item.ID] = true

		picks = append(picks, models.Pick{
			Type:  arch.label,
			Item:  chosen.item,
			Fees:  chosen.fees,
			Score: chosen.score,
			Why:   e.whyFor(arch.label, chosen, cons),
		})
	}

	return picks, bundleNote(skipped, duplicated)
}

func bundleNote(skipped []string, duplicated bool) string {
	var notes []string
	if len(skipped) > 0 {
		notes = append(notes, fmt.Sprintf("No qualifying %s pick was available.", strings.Join(skipped, " or ")))
	}
	if duplicated {
		notes = append(notes, "Fewer than 3 distinct qualifying items; some picks overlap.")
	}
	return strings.Join(notes, " ")
}

// buildRanked returns the top-N items under the general blend, truncated
// to the filtered set size. The caller reports the pre-truncation size as
// total_candidates.
func (e *Engine) buildRanked(cands []candidate, cons models.Constraints, history models.UserHistory, now time.Time) ([]models.Pick, int) {
	ranked := make([]scored, 0, len(cands))
	for _, c := range cands {
		s := e.subScoresFor(c, cons, history, now)
		ranked = append(ranked, scored{
			candidate: c,
			subs:      s,
			score:     composite(e.cfg.Scoring.General, s, false, cons.Novelty, c),
		})
	}
	sortScored(ranked)

	n := cons.Limit
	if n > len(ranked) {
		n = len(ranked)
	}
	picks := make([]models.Pick, 0, n)
	for i := 0; i < n; i++ {
		sc := ranked[i]
		picks = append(picks, models.Pick{
			Rank:  i + 1,
			Item:  sc.item,
			Fees:  sc.fees,
			Score: sc.score,
			Why:   e.whyFor("", sc, cons),
		})
	}
	return picks, len(ranked)
}

// whyFor builds the one-line rationale from the pick's dominant signals,
// in the voice of the original picks: item, headline numbers, then the
// reason it won its slot.
func (e *Engine) whyFor(label string, sc scored, cons models.Constraints) string {
	cur := e.cfg.Fees.Currency
	head := fmt.Sprintf("%s from %s — %.1f★, %dm ETA, %s%.2f all-in",
		sc.item.Name, sc.item.Restaurant, sc.item.Rating, sc.item.EtaMin, cur, sc.fees.Total)

	var reason string
	switch label {
	case models.ArchetypeSafe:
		reason = "a dependable favourite well inside your limits"
	case models.ArchetypeValue:
		reason = fmt.Sprintf("leaves %s%.0f of your budget unspent", cur, cons.Budget-sc.fees.Total)
	case models.ArchetypeAdventure:
		if sc.subs.novelty >= sc.subs.spiceAdventure {
			reason = "something you haven't tried lately"
		} else {
			reason = "a spicier twist on your usual"
		}
	default:
		reason = dominantReason(sc.subs)
	}

	if sc.hasIntent && sc.relevance >= 0.5 {
		reason += ", closest match to your craving"
	}
	return head + "; " + reason
}

func dominantReason(s subScores) string {
	switch {
	case s.rating >= s.value && s.rating >= s.novelty:
		return "top-rated near your price ceiling"
	case s.value >= s.novelty:
		return "strong value for the money"
	default:
		return "fresh territory for you"
	}
}
