package domain

// Hotel is immutable catalog reference data: loaded once, never mutated.
// Prices are whole USD per night.
type Hotel struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Distance    string   `json:"distance"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Rooms       []Room   `json:"rooms"`
}

// Room is owned by its Hotel; its ID is only unique within the parent.
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Size     int    `json:"size"` // m²
	Price    int    `json:"price"`
	Image    string `json:"image"`
}

// RoomByID returns the room with the given id, or false when the hotel
// has no such room.
func (h Hotel) RoomByID(id int64) (Room, bool) {
	for _, r := range h.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}
