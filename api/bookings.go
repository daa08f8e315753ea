package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightNumber string `json:"flight_number"`
	PassengerID  string `json:"passenger_id"`
	CabinClass   string `json:"cabin_class"`
	MealID       string `json:"meal_id"`
}

type bookingResponse struct {
	ID           string `json:"id"`
	FlightNumber string `json:"flight_number"`
	SeatNumber   int    `json:"seat_number"`
	CabinClass   string `json:"cabin_class"`
	Passenger    string `json:"passenger"`
	Meal         string `json:"meal"`
	Total        string `json:"total"`
	Cost         string `json:"cost"`
	Profit       string `json:"profit"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type totalsResponse struct {
	Price  string `json:"price"`
	Cost   string `json:"cost"`
	Profit string `json:"profit"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/totals", h.totals)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightNumber: req.FlightNumber,
		PassengerID:  req.PassengerID,
		CabinClass:   req.CabinClass,
		MealID:       req.MealID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) list(c *gin.Context) {
	status := c.DefaultQuery("status", string(domain.BookingConfirmed))
	bookings, err := h.service.ListByStatus(c.Request.Context(), domain.BookingStatus(status))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) totals(c *gin.Context) {
	totals, err := h.service.Totals(c.Request.Context(), c.Query("flight"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, totalsResponse{
		Price:  totals.Price.StringFixed(2),
		Cost:   totals.Cost.StringFixed(2),
		Profit: totals.Profit.StringFixed(2),
	})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:           b.ID().String(),
		FlightNumber: b.Flight().Number(),
		SeatNumber:   b.Seat().Number(),
		CabinClass:   string(b.Seat().Class()),
		Passenger:    b.Passenger().Name(),
		Meal:         b.Meal().Description(),
		Total:        b.Total().StringFixed(2),
		Cost:         b.Cost().StringFixed(2),
		Profit:       b.Profit().StringFixed(2),
		Status:       string(b.Status()),
		CreatedAt:    b.Created().Format(time.RFC3339),
	}
}
