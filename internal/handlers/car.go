package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DaniilSsv/rental-api/internal/services"
)

// topCarsLimit caps the popularity ranking exposed over HTTP.
const topCarsLimit = 4

type CarRequest struct {
	Brand       string `json:"brand" binding:"required,max=255"`
	Model       string `json:"model" binding:"required,max=255"`
	Power       int    `json:"power" binding:"required,gt=0"`
	Year        int    `json:"year" binding:"required,min=1886"`
	Color       string `json:"color" binding:"required,max=255"`
	ImageURI    string `json:"imageUri" binding:"required,max=2048"`
	Description string `json:"description" binding:"max=3000"`
	DealerID    uint   `json:"dealerId" binding:"required"`
}

func (r *CarRequest) toInput() services.CarInput {
	return services.CarInput{
		Brand:       r.Brand,
		Model:       r.Model,
		Power:       r.Power,
		Year:        r.Year,
		Color:       r.Color,
		ImageURI:    r.ImageURI,
		Description: r.Description,
		DealerID:    r.DealerID,
	}
}

type CarHandler struct {
	Cars *services.CarService
}

func NewCarHandler(svc *services.CarService) *CarHandler {
	return &CarHandler{Cars: svc}
}

func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.Cars.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]CarResponse, 0, len(cars))
	for i := range cars {
		out = append(out, newCarResponse(&cars[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CarHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	car, err := h.Cars.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCarResponse(car))
}

func (h *CarHandler) Create(c *gin.Context) {
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	car, err := h.Cars.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCarResponse(car))
}

func (h *CarHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	car, err := h.Cars.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCarResponse(car))
}

func (h *CarHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Cars.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CarHandler) WithDealer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	car, dealer, err := h.Cars.WithDealer(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCarDealerResponse(car, dealer))
}

func (h *CarHandler) TopCars(c *gin.Context) {
	ranked, err := h.Cars.TopCars(c.Request.Context(), topCarsLimit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]PopCarResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, newPopCarResponse(r))
	}
	c.JSON(http.StatusOK, out)
}
