package api

import (
	"errors"
	"net/http"

	reqdto "courtside/internal/handler/dto/request"
	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/handler/middleware"
	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(
	catalogCommands commands.CatalogCommands,
	catalogQueries queries.CatalogQueries,
) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Create court
// @Description Register a court with its booking policy; owners and admins only
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Court request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /courts [post]
func (h *CatalogHandler) CreateCourt(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateCourt(c.Request.Context(), actor, req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get court
// @Description Get a court with its booking policy
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *CatalogHandler) GetCourt(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	view, err := h.catalogQueries.GetCourt(c.Request.Context(), courtID)
	if err != nil {
		if errors.Is(err, queries.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}

// @Summary Create weekly template
// @Description Add a weekly schedule template to a court; the court owner and admins only
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.CreateTemplateRequest true "Template request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /courts/{id}/templates [post]
func (h *CatalogHandler) CreateTemplate(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	var req reqdto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateTemplate(c.Request.Context(), actor, courtID, req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List weekly templates
// @Description List the weekly schedule templates of a court
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {array} resdto.TemplateResponse
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/templates [get]
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	views, err := h.catalogQueries.ListTemplates(c.Request.Context(), courtID)
	if err != nil {
		if errors.Is(err, queries.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.TemplateResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, resdto.FromTemplateView(v))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Create promotion
// @Description Add a dated promotion to a court; the court owner and admins only
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.CreatePromotionRequest true "Promotion request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /courts/{id}/promotions [post]
func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	id, err := h.catalogCommands.CreatePromotion(c.Request.Context(), actor, courtID, params)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List promotions
// @Description List the promotions of a court
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {array} resdto.PromotionResponse
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/promotions [get]
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	views, err := h.catalogQueries.ListPromotions(c.Request.Context(), courtID)
	if err != nil {
		if errors.Is(err, queries.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.PromotionResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, resdto.FromPromotionView(v))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *CatalogHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to perform this operation",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
