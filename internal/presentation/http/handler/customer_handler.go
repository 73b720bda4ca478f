package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/application/service"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles favourite customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

type favouriteRequest struct {
	CustomerName string `json:"customerName"`
	Mobile       string `json:"mobile"`
}

type measurementRequest struct {
	Name     string `json:"name"`
	Length   string `json:"length"`
	Shoulder string `json:"shoulder"`
	Chest    string `json:"chest"`
	Waist    string `json:"waist"`
	Hip      string `json:"hip"`
	Sleeves  string `json:"sleeves"`
	Neck     string `json:"neck"`
	Armhole  string `json:"armhole"`
	Cuff     string `json:"cuff"`
	Bottom   string `json:"bottom"`
}

func (r *measurementRequest) toInput() *service.MeasurementInput {
	return &service.MeasurementInput{
		Name:     r.Name,
		Length:   r.Length,
		Shoulder: r.Shoulder,
		Chest:    r.Chest,
		Waist:    r.Waist,
		Hip:      r.Hip,
		Sleeves:  r.Sleeves,
		Neck:     r.Neck,
		Armhole:  r.Armhole,
		Cuff:     r.Cuff,
		Bottom:   r.Bottom,
	}
}

// Add handles filing a favourite customer
func (h *CustomerHandler) Add(c *gin.Context) {
	var req favouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.AddFavourite(c.Request.Context(), &service.FavouriteInput{
		CustomerName: req.CustomerName,
		Mobile:       req.Mobile,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Favourite customer saved", customer)
}

// List handles listing the favourites book
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.ListFavourites(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Favourite customers retrieved successfully", customers)
}

// Get handles looking up one favourite by mobile
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetFavourite(c.Request.Context(), c.Param("mobile"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Favourite customer retrieved successfully", customer)
}

// Remove handles dropping a favourite and their profiles
func (h *CustomerHandler) Remove(c *gin.Context) {
	if err := h.customerService.RemoveFavourite(c.Request.Context(), c.Param("mobile")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Favourite customer removed", nil)
}

// Bills handles listing a favourite customer's order history
func (h *CustomerHandler) Bills(c *gin.Context) {
	bills, err := h.customerService.Bills(c.Request.Context(), c.Param("mobile"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer bills retrieved successfully", bills)
}

// AddProfile handles saving a measurement profile
func (h *CustomerHandler) AddProfile(c *gin.Context) {
	var req measurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.customerService.AddProfile(c.Request.Context(), c.Param("mobile"), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Measurement profile saved", profile)
}

// ListProfiles handles listing a customer's measurement profiles
func (h *CustomerHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.customerService.ListProfiles(c.Request.Context(), c.Param("mobile"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Measurement profiles retrieved successfully", profiles)
}

// UpdateProfile handles replacing a measurement profile
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	id, err := parseIDParam(c, "profileId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req measurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.customerService.UpdateProfile(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Measurement profile updated", profile)
}

// DeleteProfile handles removing one measurement profile
func (h *CustomerHandler) DeleteProfile(c *gin.Context) {
	id, err := parseIDParam(c, "profileId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.customerService.DeleteProfile(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Measurement profile deleted", nil)
}
