package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DaniilSsv/rental-api/internal/models"
	"github.com/DaniilSsv/rental-api/internal/services"
)

// RentalRequest is the payload for creating or fully updating a rental.
// Binding tags cover field-level validation; the date-in-future rules are
// checked separately because they depend on the current day.
type RentalRequest struct {
	CarID          uint        `json:"carId" binding:"required"`
	RentalPrice    float64     `json:"rentalPrice" binding:"required,gt=0"`
	StartDate      models.Date `json:"startDate" binding:"required"`
	EndDate        models.Date `json:"endDate" binding:"required"`
	Deposit        float64     `json:"deposit" binding:"required,gt=0"`
	PickupLocation string      `json:"pickupLocation" binding:"required,max=255"`
	Email          string      `json:"email" binding:"required,email"`
}

func (r *RentalRequest) dateError() string {
	today := models.Today()
	if r.StartDate.Before(today) {
		return "startDate must not be in the past"
	}
	if !r.EndDate.After(today) {
		return "endDate must be in the future"
	}
	return ""
}

func (r *RentalRequest) toInput() services.RentalInput {
	return services.RentalInput{
		CarID:          r.CarID,
		RentalPrice:    r.RentalPrice,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Deposit:        r.Deposit,
		PickupLocation: r.PickupLocation,
		Email:          r.Email,
	}
}

type RentalHandler struct {
	Rentals *services.RentalService
}

func NewRentalHandler(svc *services.RentalService) *RentalHandler {
	return &RentalHandler{Rentals: svc}
}

func (h *RentalHandler) List(c *gin.Context) {
	rentals, err := h.Rentals.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]RentalResponse, 0, len(rentals))
	for i := range rentals {
		out = append(out, newRentalResponse(&rentals[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RentalHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rental, err := h.Rentals.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRentalResponse(rental))
}

func (h *RentalHandler) Create(c *gin.Context) {
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.dateError(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	rental, err := h.Rentals.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRentalResponse(rental))
}

func (h *RentalHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.dateError(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	rental, err := h.Rentals.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRentalResponse(rental))
}

func (h *RentalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Rentals.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
