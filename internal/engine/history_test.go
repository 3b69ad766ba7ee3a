package engine

import (
	"testing"
	"time"

	"github.com/arvindrk/eatdecider/internal/models"
)

func TestRecencyPenaltyNeverSeen(t *testing.T) {
	if got := recencyPenalty(models.ItemStats{}, time.Now(), 72); got != 0 {
		t.Errorf("never-seen item penalty = %v, want 0", got)
	}
}

func TestRecencyPenaltyGrowsWithFrequency(t *testing.T) {
	now := time.Now()
	once := recencyPenalty(models.ItemStats{Count: 1, LastSelected: now}, now, 72)
	thrice := recencyPenalty(models.ItemStats{Count: 3, LastSelected: now}, now, 72)
	if thrice <= once {
		t.Errorf("penalty should grow with count: once=%v thrice=%v", once, thrice)
	}
	if thrice >= 1 {
		t.Errorf("penalty should stay below 1, got %v", thrice)
	}
}

func TestRecencyPenaltyDecays(t *testing.T) {
	now := time.Now()
	fresh := recencyPenalty(models.ItemStats{Count: 2, LastSelected: now}, now, 72)
	weekOld := recencyPenalty(models.ItemStats{Count: 2, LastSelected: now.Add(-7 * 24 * time.Hour)}, now, 72)
	if weekOld >= fresh {
		t.Errorf("penalty should decay: fresh=%v weekOld=%v", fresh, weekOld)
	}
	if halved := recencyPenalty(models.ItemStats{Count: 2, LastSelected: now.Add(-72 * time.Hour)}, now, 72); halved <= 0.49*fresh || halved >= 0.51*fresh {
		t.Errorf("penalty after one half-life = %v, want ~%v", halved, fresh/2)
	}
}

func TestBuildUserHistoryCountsSelectedOnly(t *testing.T) {
	now := time.Now()
	events := []models.FeedbackEvent{
		{ItemID: "a", Outcome: models.OutcomeSelected, Timestamp: now.Add(-2 * time.Hour)},
		{ItemID: "a", Outcome: models.OutcomeSelected, Timestamp: now},
		{ItemID: "a", Outcome: models.OutcomeIgnored, Timestamp: now},
		{ItemID: "b", Outcome: models.OutcomeIgnored, Timestamp: now},
	}
	history := models.BuildUserHistory(events)

	if stats := history["a"]; stats.Count != 2 || !stats.LastSelected.Equal(now) {
		t.Errorf("unexpected stats for a: %+v", stats)
	}
	if _, ok := history["b"]; ok {
		t.Errorf("ignored-only item should not appear in history")
	}
}
