package api

import (
	"net/http"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the read-only lookups over the airline's
// passenger and meal registers.
type ReferenceHandler struct {
	airline *domain.Airline
}

type passengerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
}

type mealResponse struct {
	ID          string `json:"id"`
	Class       string `json:"class"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func NewReferenceHandler(airline *domain.Airline) *ReferenceHandler {
	return &ReferenceHandler{airline: airline}
}

func (h *ReferenceHandler) Register(router *gin.RouterGroup) {
	router.GET("/passengers", h.passengers)
	router.GET("/meals", h.meals)
}

// passengers lists the register, or resolves one passenger by
// case-insensitive name prefix when ?name= is given.
func (h *ReferenceHandler) passengers(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		passenger, err := h.airline.Passengers().ByName(name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toPassengerResponse(passenger))
		return
	}

	all := h.airline.Passengers().All()
	out := make([]passengerResponse, 0, len(all))
	for _, p := range all {
		out = append(out, toPassengerResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// meals lists the catalogue, or resolves one meal by case-insensitive
// description prefix when ?name= is given.
func (h *ReferenceHandler) meals(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		meal, err := h.airline.Meals().ByDescription(name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toMealResponse(meal))
		return
	}

	all := h.airline.Meals().All()
	out := make([]mealResponse, 0, len(all))
	for _, m := range all {
		out = append(out, toMealResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

func toPassengerResponse(p *domain.Passenger) passengerResponse {
	return passengerResponse{
		ID:        p.ID().String(),
		Name:      p.Name(),
		Gender:    string(p.Gender()),
		BirthDate: p.BirthDate().Format("2006-01-02"),
	}
}

func toMealResponse(m *domain.Meal) mealResponse {
	return mealResponse{
		ID:          m.ID().String(),
		Class:       string(m.Class()),
		Description: m.Description(),
		Price:       m.Price().StringFixed(2),
	}
}
