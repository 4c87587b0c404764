// Package catalog provides the built-in hotel catalog. Production setups
// swap in the MySQL or remote catalog adapters behind the same port.
package catalog

import (
	"context"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

// Builtin serves the fixed demo catalog from memory.
type Builtin struct{ hotels []domain.Hotel }

func NewBuiltin() *Builtin { return &Builtin{hotels: Hotels()} }

func (b *Builtin) List(ctx context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, len(b.hotels))
	copy(out, b.hotels)
	return out, nil
}

func (b *Builtin) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	for _, h := range b.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}

// Hotels returns a fresh copy of the demo catalog. The seeder uses it to
// populate MySQL; the Builtin source serves it directly.
func Hotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:       1,
			Name:     "Gran Hotel Paradise",
			Location: "San Juan, Puerto Rico",
			Rating:   4.8,
			Reviews:  342,
			Price:    189,
			Image:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
			Distance: "0.5 km del centro",
			Amenities: []string{
				"Wifi", "Piscina", "Estacionamiento", "Gimnasio", "Restaurante",
			},
			Description: "Hotel de lujo en el corazón de San Juan con vistas espectaculares al mar y servicio excepcional.",
			Rooms: []domain.Room{
				{ID: 1, Name: "Habitación Estándar", Capacity: 2, Size: 25, Price: 189, Image: "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=800"},
				{ID: 2, Name: "Suite Deluxe", Capacity: 3, Size: 45, Price: 289, Image: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800"},
				{ID: 3, Name: "Suite Presidencial", Capacity: 4, Size: 80, Price: 489, Image: "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800"},
			},
		},
		{
			ID:       2,
			Name:     "Tropical Beach Resort",
			Location: "Dorado, Puerto Rico",
			Rating:   4.6,
			Reviews:  218,
			Price:    159,
			Image:    "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800",
			Distance: "1.2 km del centro",
			Amenities: []string{
				"Wifi", "Playa privada", "Spa", "Bar", "Piscina",
			},
			Description: "Resort frente al mar con todas las comodidades para unas vacaciones inolvidables.",
			Rooms: []domain.Room{
				{ID: 1, Name: "Habitación Vista Jardín", Capacity: 2, Size: 30, Price: 159, Image: "https://images.unsplash.com/photo-1618773928121-c32242e63f39?w=800"},
				{ID: 2, Name: "Habitación Vista Mar", Capacity: 2, Size: 35, Price: 229, Image: "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800"},
			},
		},
		{
			ID:       3,
			Name:     "City Center Hotel",
			Location: "Ponce, Puerto Rico",
			Rating:   4.5,
			Reviews:  156,
			Price:    129,
			Image:    "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800",
			Distance: "Centro de la ciudad",
			Amenities: []string{
				"Wifi", "Desayuno incluido", "Estacionamiento", "Business center",
			},
			Description: "Hotel moderno ideal para viajeros de negocios y turistas que buscan comodidad.",
			Rooms: []domain.Room{
				{ID: 1, Name: "Habitación Doble", Capacity: 2, Size: 22, Price: 129, Image: "https://images.unsplash.com/photo-1590490359683-658d3d23f972?w=800"},
			},
		},
	}
}
