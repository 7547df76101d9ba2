package property

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"boolbnb/internal/pkg/response"
	"boolbnb/internal/pkg/validator"
	"boolbnb/internal/storage"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search godoc
// @Summary Search listings
// @Description Filters by address/city substring, minimum rooms, beds, bathrooms and type name. Ordered by summed review rating.
// @Tags Properties
// @Produce json
// @Param searchTerm query string false "Substring of address or city"
// @Param minRooms query integer false "Minimum rooms"
// @Param minBeds query integer false "Minimum beds"
// @Param minBathrooms query integer false "Minimum bathrooms"
// @Param propertyType query string false "Property type name"
// @Param page query integer false "Page number" default(1)
// @Param limit query integer false "Page size (max 50)" default(3)
// @Success 200 {object} SearchResult
// @Failure 400,500 {object} map[string]interface{}
// @Router /properties [get]
func (h *Handler) Search(c *gin.Context) {
	params, err := ParseSearchParams(c.Request.URL.Query())
	if err != nil {
		handleError(c, err)
		return
	}

	result, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBySlug godoc
// @Summary Get a listing by slug
// @Tags Properties
// @Produce json
// @Param slug path string true "Listing slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404,500 {object} map[string]interface{}
// @Router /properties/{slug} [get]
func (h *Handler) GetBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": p})
}

// GetByID godoc
// @Summary Get a listing by id
// @Tags Properties
// @Produce json
// @Param id path integer true "Listing id"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /properties/by-id/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "id must be a positive integer")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": p})
}

// Create godoc
// @Summary Create a listing
// @Description JSON body, or multipart form with an optional cover_img file and up to 4 images files (jpeg/png, 5 MB each).
// @Tags Properties
// @Accept json,mpfd
// @Produce json
// @Param cover_img formData file false "Cover image"
// @Param images formData file false "Secondary images"
// @Success 201 {object} CreateResponse
// @Failure 400,409,500 {object} map[string]interface{}
// @Router /properties [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	var (
		cover  *multipart.FileHeader
		images []*multipart.FileHeader
	)
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if files := form.File["cover_img"]; len(files) > 1 {
			response.BadRequest(c, "only one cover_img is allowed")
			return
		} else if len(files) == 1 {
			cover = files[0]
		}
		images = form.File["images"]
	}

	slug, err := h.service.Create(c.Request.Context(), &req, cover, images)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateResponse{Message: "Property created", Slug: slug})
}

// Like godoc
// @Summary Increment the like counter of a listing
// @Tags Properties
// @Produce json
// @Param slug path string true "Listing slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404,500 {object} map[string]interface{}
// @Router /properties/{slug}/like [patch]
func (h *Handler) Like(c *gin.Context) {
	p, err := h.service.Like(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": p})
}

// ListTypes godoc
// @Summary List property types
// @Tags Properties
// @Produce json
// @Success 200 {array} domain.PropertyType
// @Router /api/property-types [get]
func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func handleError(c *gin.Context, err error) {
	switch {
	case validator.IsInvalid(err), storage.IsUploadError(err):
		response.BadRequest(c, err.Error())
	case errors.Is(err, ErrEmptySlug), errors.Is(err, ErrInvalidType):
		response.BadRequest(c, err.Error())
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Property not found")
	case errors.Is(err, ErrSlugConflict):
		response.Conflict(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
