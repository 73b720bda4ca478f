package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/application/service"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/dto/response"
)

// AlterationHandler handles alteration-related HTTP requests
type AlterationHandler struct {
	alterationService *service.AlterationService
}

// NewAlterationHandler creates a new alteration handler
func NewAlterationHandler(alterationService *service.AlterationService) *AlterationHandler {
	return &AlterationHandler{alterationService: alterationService}
}

type alterationRequest struct {
	BillNo       string `json:"billNo"`
	CustomerName string `json:"customerName"`
	Mobile       string `json:"mobile"`
	Problem      string `json:"problem"`
}

type alterationPatchRequest struct {
	BillNo       *string `json:"billNo"`
	CustomerName *string `json:"customerName"`
	Mobile       *string `json:"mobile"`
	Problem      *string `json:"problem"`
	IsReady      *bool   `json:"isReady"`
}

// Create handles recording an alteration job
func (h *AlterationHandler) Create(c *gin.Context) {
	var req alterationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	alteration, err := h.alterationService.CreateAlteration(c.Request.Context(), &service.AlterationInput{
		BillNo:       req.BillNo,
		CustomerName: req.CustomerName,
		Mobile:       req.Mobile,
		Problem:      req.Problem,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Alteration created successfully", alteration)
}

// List handles listing alterations, optionally searched
func (h *AlterationHandler) List(c *gin.Context) {
	alterations, err := h.alterationService.SearchAlterations(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Alterations retrieved successfully", alterations)
}

// Update handles patching an alteration, including the ready toggle
func (h *AlterationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req alterationPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	alteration, err := h.alterationService.UpdateAlteration(c.Request.Context(), id, &service.AlterationPatch{
		BillNo:       req.BillNo,
		CustomerName: req.CustomerName,
		Mobile:       req.Mobile,
		Problem:      req.Problem,
		IsReady:      req.IsReady,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Alteration updated successfully", alteration)
}

// Delete handles removing an alteration job
func (h *AlterationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.alterationService.DeleteAlteration(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Alteration deleted successfully", nil)
}

// ReadyLink returns the WhatsApp pickup message link
func (h *AlterationHandler) ReadyLink(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	link, err := h.alterationService.ReadyLink(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Ready link built", gin.H{"link": link})
}
