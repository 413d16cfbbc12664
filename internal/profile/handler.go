package profile

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.update)
}

// ProfileResponse is the outward-facing representation of a profile.
type ProfileResponse struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Skills     string          `json:"skills"`
	Experience string          `json:"experience"`
	Languages  []LanguageSkill `json:"languages"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func toResponse(rec Record) ProfileResponse {
	return ProfileResponse{
		Name:       rec.Name,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Position:   rec.Position,
		Skills:     rec.Skills,
		Experience: rec.Experience,
		Languages:  ParseLanguages(rec.Languages),
		UpdatedAt:  rec.UpdatedAt,
	}
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	respond.OK(c, toResponse(rec))
}

type updateRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Skills     string          `json:"skills"`
	Experience string          `json:"experience"`
	Languages  []LanguageSkill `json:"languages"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := middleware.SessionIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec := Record{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Skills:     req.Skills,
		Experience: req.Experience,
		Languages:  MarshalLanguages(req.Languages),
	}

	saved, err := h.Svc.Update(c.Request.Context(), userID, sessionID, rec)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		}
		return
	}

	respond.OK(c, toResponse(saved))
}
