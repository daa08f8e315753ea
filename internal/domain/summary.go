package domain

import "time"

// FlightSummary is the serializable view of a flight used by the HTTP
// surface and the snapshot cache.
type FlightSummary struct {
	Number           string    `json:"number"`
	From             string    `json:"from"`
	To               string    `json:"to"`
	Departure        time.Time `json:"departure"`
	Arrival          time.Time `json:"arrival"`
	Status           string    `json:"status"`
	FirstClassPrice  string    `json:"first_class_price"`
	EconomyPrice     string    `json:"economy_price"`
	AvailableFirst   int       `json:"available_first"`
	AvailableEconomy int       `json:"available_economy"`
	TotalSeats       int       `json:"total_seats"`
}

// Summarize captures the flight's current state as a snapshot.
func (f *Flight) Summarize() FlightSummary {
	return FlightSummary{
		Number:           f.Number(),
		From:             f.From().Name(),
		To:               f.To().Name(),
		Departure:        f.Departure(),
		Arrival:          f.Arrival(),
		Status:           string(f.Status()),
		FirstClassPrice:  f.FirstClassPrice().StringFixed(2),
		EconomyPrice:     f.EconomyClassPrice().StringFixed(2),
		AvailableFirst:   f.Seats().AvailableCount(CabinFirst),
		AvailableEconomy: f.Seats().AvailableCount(CabinEconomy),
		TotalSeats:       f.Seats().Len(),
	}
}
