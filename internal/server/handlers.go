package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleMenu(c *gin.Context) {
	items, err := s.catalog.GetAll(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog read failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleRecommend(c *gin.Context) {
	cons, err := parseConstraints(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.engine.Recommend(c.Request.Context(), cons)
	if err != nil {
		var invalid *models.InvalidConstraintError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		case errors.Is(err, models.ErrStoreUnavailable):
			s.logger.Error().Err(err).Msg("store unavailable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable, try again shortly"})
		default:
			s.logger.Error().Err(err).Msg("recommend failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

type feedbackRequest struct {
	ItemID  string `json:"item_id"`
	Outcome string `json:"outcome"`
}

func (s *Server) handleFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}
	if req.Outcome == "" {
		req.Outcome = string(models.OutcomeSelected)
	}

	_, err := s.engine.RecordFeedback(c.Request.Context(), userKey(c), req.ItemID, models.Outcome(req.Outcome))
	if err != nil {
		var invalid *models.InvalidConstraintError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		case errors.Is(err, models.ErrWriteFailed):
			// Best-effort: losing one event must never block ordering.
			s.logger.Warn().Err(err).Msg("feedback not recorded")
			c.JSON(http.StatusAccepted, gin.H{"note": "feedback not recorded"})
		default:
			s.logger.Error().Err(err).Msg("feedback failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// userKey resolves the stable user identity: header first, then query
// param, then the shared anonymous bucket. Authentication is out of
// scope; the key is assumed stable per user.
func userKey(c *gin.Context) string {
	if key := c.GetHeader("X-User-Key"); key != "" {
		return key
	}
	return c.Query("user")
}

func parseConstraints(c *gin.Context) (models.Constraints, error) {
	cons := models.Constraints{
		SpicePref: 2.5,
		Novelty:   0.3,
		EtaLimit:  35,
		UserKey:   userKey(c),
		Query:     c.Query("q"),
		Location:  c.Query("place"),
	}

	budget, err := strconv.ParseFloat(c.Query("budget"), 64)
	if err != nil {
		return cons, &models.InvalidConstraintError{Field: "budget", Reason: "required integer amount"}
	}
	cons.Budget = budget

	if v := c.Query("veg_only"); v != "" {
		cons.VegOnly, err = strconv.ParseBool(v)
		if err != nil {
			return cons, &models.InvalidConstraintError{Field: "veg_only", Reason: "must be a boolean"}
		}
	}
	if v := c.Query("low_oil"); v != "" {
		cons.LowOil, err = strconv.ParseBool(v)
		if err != nil {
			return cons, &models.InvalidConstraintError{Field: "low_oil", Reason: "must be a boolean"}
		}
	}
	if v := c.Query("spice"); v != "" {
		cons.SpicePref, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return cons, &models.InvalidConstraintError{Field: "spice", Reason: "must be a number"}
		}
	}
	if v := c.Query("novelty"); v != "" {
		cons.Novelty, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return cons, &models.InvalidConstraintError{Field: "novelty", Reason: "must be a number"}
		}
	}
	if v := c.Query("eta_limit"); v != "" {
		cons.EtaLimit, err = strconv.Atoi(v)
		if err != nil {
			return cons, &models.InvalidConstraintError{Field: "eta_limit", Reason: "must be an integer"}
		}
	}
	if v := c.Query("limit"); v != "" {
		cons.Limit, err = strconv.Atoi(v)
		if err != nil || cons.Limit < 1 {
			return cons, &models.InvalidConstraintError{Field: "limit", Reason: "must be an integer >= 1"}
		}
	}
	return cons, nil
}
