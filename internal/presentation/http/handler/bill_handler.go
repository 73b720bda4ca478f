package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/application/service"
	"github.com/alhuzaifa/tailor-api/internal/domain/enum"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/dto/response"
	"github.com/alhuzaifa/tailor-api/pkg/pagination"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

type billItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type createBillRequest struct {
	CustomerName   string            `json:"customerName"`
	Mobile         string            `json:"mobile"`
	OrderDate      string            `json:"orderDate"`
	DeliveryDate   string            `json:"deliveryDate"`
	IsUrgent       bool              `json:"isUrgent"`
	AdvancePayment float64           `json:"advancePayment"`
	AssignedTo     string            `json:"assignedTo"`
	IsFavorite     bool              `json:"isFavorite"`
	Items          []billItemRequest `json:"items"`
}

type updateBillRequest struct {
	CustomerName   *string           `json:"customerName"`
	Mobile         *string           `json:"mobile"`
	OrderDate      *string           `json:"orderDate"`
	DeliveryDate   *string           `json:"deliveryDate"`
	IsUrgent       *bool             `json:"isUrgent"`
	FullPayment    *bool             `json:"fullPayment"`
	Delivered      *bool             `json:"delivered"`
	AdvancePayment *float64          `json:"advancePayment"`
	Items          []billItemRequest `json:"items"`
}

type updateItemRequest struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	Completed    *bool    `json:"completed"`
	Image        *string  `json:"image"`
	AssignedTo   *string  `json:"assignedTo"`
	WorkerRate   *float64 `json:"workerRate"`
	MoneyPaid    *float64 `json:"moneyPaid"`
	SentToWorker *bool    `json:"sentToWorker"`
	WorkerDone   *bool    `json:"workerDone"`
}

func toItemInputs(items []billItemRequest) []service.BillItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]service.BillItemInput, len(items))
	for i, item := range items {
		inputs[i] = service.BillItemInput{Name: item.Name, Price: item.Price, Image: item.Image}
	}
	return inputs
}

// Create handles creating a bill
func (h *BillHandler) Create(c *gin.Context) {
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		CustomerName:   req.CustomerName,
		Mobile:         req.Mobile,
		OrderDate:      req.OrderDate,
		DeliveryDate:   req.DeliveryDate,
		IsUrgent:       req.IsUrgent,
		AdvancePayment: req.AdvancePayment,
		AssignedTo:     req.AssignedTo,
		IsFavorite:     req.IsFavorite,
		Items:          toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", gin.H{
		"bill":         bill,
		"greetingLink": h.billService.GreetingLink(bill),
	})
}

// List handles listing bills (page or cursor based)
func (h *BillHandler) List(c *gin.Context) {
	if c.Query("cursor") != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.billService.ListBills(c.Request.Context(), &service.ListBillsInput{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		Tag:        enum.BillTag(c.Query("tag")),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

func (h *BillHandler) listWithCursor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.billService.ListBillsWithCursor(c.Request.Context(), &pagination.CursorParams{
		Cursor: c.Query("cursor"),
		Limit:  limit,
	}, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithCursor(c, 200, "Bills retrieved successfully", result)
}

// Get handles fetching one bill
func (h *BillHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", gin.H{
		"bill":    bill,
		"tag":     h.billService.Tag(bill),
		"balance": h.billService.Balance(bill),
	})
}

// GetByBillNo handles fetching one bill by its number
func (h *BillHandler) GetByBillNo(c *gin.Context) {
	bill, err := h.billService.GetBillByNo(c.Request.Context(), c.Param("billNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved successfully", bill)
}

// Update handles patching a bill
func (h *BillHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req updateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), id, &service.UpdateBillInput{
		CustomerName:   req.CustomerName,
		Mobile:         req.Mobile,
		OrderDate:      req.OrderDate,
		DeliveryDate:   req.DeliveryDate,
		IsUrgent:       req.IsUrgent,
		FullPayment:    req.FullPayment,
		Delivered:      req.Delivered,
		AdvancePayment: req.AdvancePayment,
		Items:          toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated successfully", bill)
}

// Delete handles removing a bill and everything filed under it
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted successfully", nil)
}

// UpdateItem handles patching one line item
func (h *BillHandler) UpdateItem(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.UpdateItem(c.Request.Context(), itemID, &service.UpdateItemInput{
		Name:         req.Name,
		Price:        req.Price,
		Completed:    req.Completed,
		Image:        req.Image,
		AssignedTo:   req.AssignedTo,
		WorkerRate:   req.WorkerRate,
		MoneyPaid:    req.MoneyPaid,
		SentToWorker: req.SentToWorker,
		WorkerDone:   req.WorkerDone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", bill)
}

// Assign handles assigning the whole bill to one worker
func (h *BillHandler) Assign(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		WorkerName string `json:"workerName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.AssignWorker(c.Request.Context(), id, req.WorkerName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill assigned successfully", bill)
}

// Favourite handles toggling the VIP flag
func (h *BillHandler) Favourite(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.SetFavourite(c.Request.Context(), id, req.IsFavorite)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Favourite updated successfully", bill)
}

// DraftTotals prices an unsaved order for the entry screen. The draft
// comes straight from form fields, so money values may arrive as strings.
func (h *BillHandler) DraftTotals(c *gin.Context) {
	var req struct {
		AdvancePayment amount `json:"advancePayment"`
		Items          []struct {
			Name  string `json:"name"`
			Price amount `json:"price"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.BillItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.BillItemInput{Name: item.Name, Price: float64(item.Price)}
	}

	totals := h.billService.DraftTotals(items, float64(req.AdvancePayment))
	response.OK(c, "Draft totals computed", totals)
}

// ShareLinks returns the WhatsApp links for a bill
func (h *BillHandler) ShareLinks(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share links built", gin.H{
		"greeting": h.billService.GreetingLink(bill),
		"invoice":  h.billService.InvoiceLink(bill),
		"pickup":   h.billService.PickupLink(bill),
	})
}
