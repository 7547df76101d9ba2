package image

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boolbnb/internal/domain/property"
	"boolbnb/internal/pkg/response"
	"boolbnb/internal/pkg/validator"
	"boolbnb/internal/storage"
)

// Handler serves the secondary images of a listing.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List secondary images of a listing
// @Tags Images
// @Produce json
// @Param slug path string true "Listing slug"
// @Success 200 {array} domain.PropertyImage
// @Failure 404,500 {object} map[string]interface{}
// @Router /properties/{slug}/images [get]
func (h *Handler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// Upload godoc
// @Summary Upload secondary images
// @Description Multipart field "images", 1 to 4 jpeg/png files of at most 5 MB each.
// @Tags Images
// @Accept mpfd
// @Produce json
// @Param slug path string true "Listing slug"
// @Param images formData file true "Images"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /properties/{slug}/images [post]
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "images must be sent as multipart/form-data")
		return
	}

	names, err := h.service.Upload(c.Request.Context(), c.Param("slug"), form.File["images"])
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"images": names})
}

func handleError(c *gin.Context, err error) {
	switch {
	case validator.IsInvalid(err), storage.IsUploadError(err):
		response.BadRequest(c, err.Error())
	case errors.Is(err, property.ErrNotFound):
		response.NotFound(c, "Property not found")
	default:
		response.Internal(c, err)
	}
}
