package engine

import (
	"math"
	"time"

	"github.com/arvindrk/eatdecider/internal/models"
)

// recencyPenalty grows with how often and how recently the user selected
// this exact item, in [0,1). Never-selected items carry zero penalty. The
// frequency term saturates toward 1 with repeat selections; the decay
// term halves every half-life, so an old favourite drifts back toward
// full novelty.
func recencyPenalty(stats models.ItemStats, now time.Time, halfLifeHours float64) float64 {
	if stats.Count <= 0 {
		return 0
	}
	if halfLifeHours <= 0 {
		halfLifeHours = 72
	}

	frequency := 1 - math.Pow(2, -float64(stats.Count))

	elapsed := now.Sub(stats.LastSelected).Hours()
	if elapsed < 0 {
		elapsed = 0
	}
	decay := math.Pow(2, -elapsed/halfLifeHours)

	return frequency * decay
}
