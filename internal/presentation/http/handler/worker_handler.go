package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/application/service"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/dto/response"
)

// WorkerHandler handles worker-related HTTP requests
type WorkerHandler struct {
	workerService *service.WorkerService
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerService *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

type workerRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type manualItemRequest struct {
	BillNo       string  `json:"billNo"`
	Name         string  `json:"name"`
	DeliveryDate string  `json:"deliveryDate"`
	WorkerRate   float64 `json:"workerRate"`
	MoneyPaid    float64 `json:"moneyPaid"`
}

type manualItemPatchRequest struct {
	BillNo       *string  `json:"billNo"`
	Name         *string  `json:"name"`
	DeliveryDate *string  `json:"deliveryDate"`
	WorkerRate   *float64 `json:"workerRate"`
	MoneyPaid    *float64 `json:"moneyPaid"`
	WorkerDone   *bool    `json:"workerDone"`
}

// Create handles registering a worker
func (h *WorkerHandler) Create(c *gin.Context) {
	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), &service.WorkerInput{
		Name:   req.Name,
		Mobile: req.Mobile,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Worker created successfully", worker)
}

// List handles listing all workers
func (h *WorkerHandler) List(c *gin.Context) {
	workers, err := h.workerService.ListWorkers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Workers retrieved successfully", workers)
}

// Get handles fetching one worker
func (h *WorkerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	worker, err := h.workerService.GetWorker(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Worker retrieved successfully", worker)
}

// Update handles changing a worker's details
func (h *WorkerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), id, &service.WorkerInput{
		Name:   req.Name,
		Mobile: req.Mobile,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Worker updated successfully", worker)
}

// Delete handles removing a worker
func (h *WorkerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.workerService.DeleteWorker(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Worker deleted successfully", nil)
}

// Ledger handles the merged task ledger with totals
func (h *WorkerHandler) Ledger(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	pendingOnly := c.Query("pending") == "true"
	result, err := h.workerService.Ledger(c.Request.Context(), id, c.Query("search"), pendingOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Ledger retrieved successfully", result)
}

// AddManualItem handles recording a job outside any bill
func (h *WorkerHandler) AddManualItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req manualItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.workerService.AddManualItem(c.Request.Context(), id, &service.ManualItemInput{
		BillNo:       req.BillNo,
		Name:         req.Name,
		DeliveryDate: req.DeliveryDate,
		WorkerRate:   req.WorkerRate,
		MoneyPaid:    req.MoneyPaid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Manual item created successfully", item)
}

// UpdateManualItem handles patching a manual job
func (h *WorkerHandler) UpdateManualItem(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req manualItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.workerService.UpdateManualItem(c.Request.Context(), itemID, &service.ManualItemPatch{
		BillNo:       req.BillNo,
		Name:         req.Name,
		DeliveryDate: req.DeliveryDate,
		WorkerRate:   req.WorkerRate,
		MoneyPaid:    req.MoneyPaid,
		WorkerDone:   req.WorkerDone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Manual item updated successfully", item)
}

// DeleteManualItem handles removing a manual job for good
func (h *WorkerHandler) DeleteManualItem(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.workerService.DeleteManualItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Manual item deleted successfully", nil)
}

// UnassignItem takes a bill item off the worker's ledger
func (h *WorkerHandler) UnassignItem(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.workerService.UnassignBillItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item unassigned successfully", nil)
}

// TasksLink returns the WhatsApp link listing pending jobs
func (h *WorkerHandler) TasksLink(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	link, err := h.workerService.TasksLink(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tasks link built", gin.H{"link": link})
}
