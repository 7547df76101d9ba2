package like

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"boolbnb/internal/domain/property"
	"boolbnb/internal/pkg/response"
	"boolbnb/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Check godoc
// @Summary Whether a user liked a listing
// @Tags Likes
// @Produce json
// @Param user_id query integer true "User id"
// @Param property_id query integer true "Listing id"
// @Success 200 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /likes/check [get]
func (h *Handler) Check(c *gin.Context) {
	var req Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "user_id and property_id must be numbers")
		return
	}

	liked, err := h.service.Check(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// Toggle godoc
// @Summary Like or unlike a listing
// @Tags Likes
// @Accept json
// @Produce json
// @Param request body Request true "Pair to toggle"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /likes/toggle [post]
func (h *Handler) Toggle(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	liked, err := h.service.Toggle(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	msg := "Like removed"
	if liked {
		msg = "Like added"
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "message": msg})
}

// Add godoc
// @Summary Like a listing
// @Tags Likes
// @Accept json
// @Produce json
// @Param request body Request true "Pair to like"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /likes [post]
func (h *Handler) Add(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Add(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Like added!"})
}

// Count godoc
// @Summary Number of likes of a listing
// @Tags Likes
// @Produce json
// @Param property_id path integer true "Listing id"
// @Success 200 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /likes/count/{property_id} [get]
func (h *Handler) Count(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("property_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "property_id must be a number")
		return
	}

	n, err := h.service.Count(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likesCount": n})
}

func handleError(c *gin.Context, err error) {
	switch {
	case validator.IsInvalid(err):
		response.BadRequest(c, err.Error())
	case errors.Is(err, property.ErrNotFound):
		response.NotFound(c, "Property not found")
	default:
		response.Internal(c, err)
	}
}
