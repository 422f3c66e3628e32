package itinerary

import "github.com/google/uuid"

// ========== 資料模型 ==========

// Stop 行程中的單一地點
type Stop struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Day is an ordered list of stops for one travel day.
type Day struct {
	Stops []Stop `json:"stops"`
}

// Itinerary is the full ordered list of days. Day order is the travel
// calendar order; it is not validated against real dates.
type Itinerary struct {
	Days []Day `json:"days"`
}

func newStop(text string) Stop {
	return Stop{ID: uuid.NewString(), Text: text}
}

// StopTexts returns the day's stop texts in order.
func (d Day) StopTexts() []string {
	out := make([]string, len(d.Stops))
	for i, s := range d.Stops {
		out[i] = s.Text
	}
	return out
}

// Clone returns a deep copy, safe to hand to readers while the store
// keeps mutating.
func (it Itinerary) Clone() Itinerary {
	days := make([]Day, len(it.Days))
	for i, d := range it.Days {
		days[i] = Day{Stops: append([]Stop(nil), d.Stops...)}
	}
	return Itinerary{Days: days}
}

// FirstStop returns the first stop across all days, scanning in day order.
func (it Itinerary) FirstStop() (Stop, bool) {
	for _, d := range it.Days {
		if len(d.Stops) > 0 {
			return d.Stops[0], true
		}
	}
	return Stop{}, false
}
