package api

import (
	"errors"
	"net/http"
	"time"

	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get availability grid
// @Description Compute the slot-by-slot availability grid for a court over a date range
// @Tags availability
// @Produce json
// @Param id path string true "Court ID"
// @Param from query string true "Range start date (YYYY-MM-DD)"
// @Param to query string true "Range end date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityGridResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/availability [get]
func (h *AvailabilityHandler) GetGrid(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'from' date, expected YYYY-MM-DD",
		})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'to' date, expected YYYY-MM-DD",
		})
		return
	}

	grid, err := h.availabilityQueries.GetGrid(c.Request.Context(), courtID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, queries.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityGrid(grid))
}
