package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/application/service"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/dto/response"
)

// SampleHandler handles design sample HTTP requests
type SampleHandler struct {
	sampleService *service.SampleService
}

// NewSampleHandler creates a new sample handler
func NewSampleHandler(sampleService *service.SampleService) *SampleHandler {
	return &SampleHandler{sampleService: sampleService}
}

type sampleRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type samplePatchRequest struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Image      *string  `json:"image"`
	OutOfStock *bool    `json:"outOfStock"`
}

// Create handles filing a design sample
func (h *SampleHandler) Create(c *gin.Context) {
	var req sampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sample, err := h.sampleService.CreateSample(c.Request.Context(), &service.SampleInput{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sample created successfully", sample)
}

// List handles listing the sample catalog
func (h *SampleHandler) List(c *gin.Context) {
	samples, err := h.sampleService.ListSamples(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Samples retrieved successfully", samples)
}

// Update handles patching a sample, including the stock toggle
func (h *SampleHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req samplePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sample, err := h.sampleService.UpdateSample(c.Request.Context(), id, &service.SamplePatch{
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
		OutOfStock: req.OutOfStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sample updated successfully", sample)
}

// Delete handles dropping a sample from the catalog
func (h *SampleHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sampleService.DeleteSample(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sample deleted successfully", nil)
}

// ShareLink returns the WhatsApp broadcast link for one customer
func (h *SampleHandler) ShareLink(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	link, err := h.sampleService.ShareLink(c.Request.Context(), id, c.Query("mobile"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Share link built", gin.H{"link": link})
}
