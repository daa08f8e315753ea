package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:number", h.get)
	router.GET("/:number/seats", h.seats)
	router.PUT("/:number/status", h.setStatus)
}

type seatResponse struct {
	Number int    `json:"number"`
	Class  string `json:"class"`
	Status string `json:"status"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *FlightHandler) list(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		matched, err := h.service.ByStatus(c.Request.Context(), domain.FlightStatus(status))
		if err != nil {
			writeError(c, err)
			return
		}
		summaries := make([]domain.FlightSummary, 0, len(matched))
		for _, f := range matched {
			summaries = append(summaries, f.Summarize())
		}
		c.JSON(http.StatusOK, summaries)
		return
	}

	summaries, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flights.CreateFlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight.Summarize())
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.ByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight.Summarize())
}

func (h *FlightHandler) seats(c *gin.Context) {
	availableOnly, _ := strconv.ParseBool(c.Query("available"))
	seats, err := h.service.Seats(c.Request.Context(), c.Param("number"), c.Query("class"), availableOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]seatResponse, 0, len(seats))
	for _, seat := range seats {
		out = append(out, seatResponse{
			Number: seat.Number(),
			Class:  string(seat.Class()),
			Status: string(seat.Status()),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) setStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.SetStatus(c.Request.Context(), c.Param("number"), domain.FlightStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight.Summarize())
}
