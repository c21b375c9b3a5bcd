package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DaniilSsv/rental-api/internal/services"
)

type DealerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Address  string `json:"address" binding:"required,max=255"`
	City     string `json:"city" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Postcode int    `json:"postcode" binding:"min=0,max=9999"`
	Phone    *int   `json:"phone" binding:"omitempty,min=10000000,max=999999999"`
}

func (r *DealerRequest) toInput() services.DealerInput {
	return services.DealerInput{
		Name:     r.Name,
		Address:  r.Address,
		City:     r.City,
		Email:    r.Email,
		Postcode: r.Postcode,
		Phone:    r.Phone,
	}
}

type DealerHandler struct {
	Dealers *services.DealerService
}

func NewDealerHandler(svc *services.DealerService) *DealerHandler {
	return &DealerHandler{Dealers: svc}
}

func (h *DealerHandler) List(c *gin.Context) {
	dealers, err := h.Dealers.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]DealerResponse, 0, len(dealers))
	for i := range dealers {
		out = append(out, newDealerResponse(&dealers[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *DealerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dealer, err := h.Dealers.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDealerResponse(dealer))
}

func (h *DealerHandler) Create(c *gin.Context) {
	var req DealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dealer, err := h.Dealers.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newDealerResponse(dealer))
}

func (h *DealerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dealer, err := h.Dealers.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDealerResponse(dealer))
}

func (h *DealerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Dealers.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
