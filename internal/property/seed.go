package property

func strptr(s string) *string { return &s }

// DefaultSeed returns the reference catalog used by the in-memory server,
// the database seeding step and the tests.
func DefaultSeed() []Property {
	return []Property{
		{
			ID:          "1",
			Name:        "Serene Haven Estates",
			Location:    "Downtown Metropolis",
			Address:     "123 Sukhumvit Road, Bangkok 10110",
			Beds:        3,
			Baths:       2,
			Area:        1648,
			Price:       25000,
			Type:        "House",
			Image:       "/images/rentals/rental1.jpg",
			Images:      []string{"/images/rentals/rental1.jpg", "/images/rentals/rental2.jpg", "/images/rentals/rental3.jpg", "/images/rentals/rental4.jpg"},
			Description: strptr("Experience luxurious living in this stunning modern home. Spacious rooms, high ceilings and premium finishes throughout, with an open-plan living area connecting to a private garden."),
			Amenities:   []string{"Air Conditioning", "Swimming Pool", "Parking", "Garden", "Security", "Furnished", "WiFi", "Gym Access"},
			IsAvailable: true,
		},
		{
			ID:          "2",
			Name:        "Ocean View Villa",
			Location:    "Pattaya Beach",
			Address:     "456 Beach Road, Pattaya 20150",
			Beds:        4,
			Baths:       3,
			Area:        2200,
			Price:       45000,
			Type:        "Villa",
			Image:       "/images/rentals/rental2.jpg",
			Images:      []string{"/images/rentals/rental2.jpg", "/images/rentals/rental1.jpg", "/images/rentals/rental3.jpg", "/images/rentals/rental4.jpg"},
			Description: strptr("Wake up to breathtaking ocean views in this luxurious beachfront villa with expansive terraces, a private pool and direct beach access."),
			Amenities:   []string{"Ocean View", "Private Pool", "Beach Access", "Air Conditioning", "Furnished", "Security", "Parking", "BBQ Area"},
			IsAvailable: true,
		},
		{
			ID:          "3",
			Name:        "Modern City Condo",
			Location:    "Bangkok Central",
			Address:     "789 Silom Road, Bangkok 10500",
			Beds:        2,
			Baths:       1,
			Area:        850,
			Price:       15000,
			Type:        "Condo",
			Image:       "/images/rentals/rental3.jpg",
			Images:      []string{"/images/rentals/rental3.jpg", "/images/rentals/rental1.jpg", "/images/rentals/rental2.jpg", "/images/rentals/rental4.jpg"},
			Description: strptr("Live in the heart of Bangkok in this stylish modern condo. Walking distance to the BTS, shopping malls and vibrant nightlife."),
			Amenities:   []string{"Air Conditioning", "Gym Access", "Swimming Pool", "24/7 Security", "Parking", "Furnished", "Near BTS", "Laundry"},
			IsAvailable: true,
		},
		{
			ID:          "4",
			Name:        "Tropical Garden House",
			Location:    "Chiang Mai",
			Address:     "321 Nimmanhaemin Road, Chiang Mai 50200",
			Beds:        3,
			Baths:       2,
			Area:        1800,
			Price:       20000,
			Type:        "House",
			Image:       "/images/rentals/rental4.jpg",
			Images:      []string{"/images/rentals/rental4.jpg", "/images/rentals/rental1.jpg", "/images/rentals/rental2.jpg", "/images/rentals/rental3.jpg"},
			Description: strptr("Escape to this charming tropical house surrounded by lush gardens, close to Chiang Mai's famous cafes and cultural attractions."),
			Amenities:   []string{"Garden", "Air Conditioning", "Parking", "Furnished", "Pet Friendly", "Mountain View", "WiFi", "Storage"},
			IsAvailable: true,
		},
		{
			ID:          "5",
			Name:        "Luxury Penthouse",
			Location:    "Bangkok Central",
			Address:     "555 Sathorn Road, Bangkok 10120",
			Beds:        4,
			Baths:       3,
			Area:        3000,
			Price:       80000,
			Type:        "Condo",
			Image:       "/images/rentals/rental1.jpg",
			Images:      []string{"/images/rentals/rental1.jpg", "/images/rentals/rental2.jpg", "/images/rentals/rental3.jpg", "/images/rentals/rental4.jpg"},
			Description: strptr("Panoramic city views, designer interiors and private elevator access in this exclusive penthouse residence."),
			Amenities:   []string{"City View", "Private Elevator", "Terrace", "Air Conditioning", "Concierge", "Gym Access", "Swimming Pool", "Wine Cellar"},
			IsAvailable: true,
		},
		{
			ID:          "6",
			Name:        "Riverside Retreat",
			Location:    "Chiang Mai",
			Address:     "888 Ping River Road, Chiang Mai 50300",
			Beds:        2,
			Baths:       2,
			Area:        1200,
			Price:       18000,
			Type:        "House",
			Image:       "/images/rentals/rental2.jpg",
			Images:      []string{"/images/rentals/rental2.jpg", "/images/rentals/rental1.jpg", "/images/rentals/rental3.jpg", "/images/rentals/rental4.jpg"},
			Description: strptr("A cozy riverside home on the Ping River combining rustic charm with modern amenities and a private deck."),
			Amenities:   []string{"River View", "Private Deck", "Garden", "Air Conditioning", "Furnished", "Parking", "WiFi", "Kayak Access"},
			IsAvailable: true,
		},
		{
			ID:          "7",
			Name:        "Beachfront Bungalow",
			Location:    "Pattaya Beach",
			Address:     "999 Jomtien Beach Road, Pattaya 20250",
			Beds:        1,
			Baths:       1,
			Area:        600,
			Price:       12000,
			Type:        "Villa",
			Image:       "/images/rentals/rental3.jpg",
			Images:      []string{"/images/rentals/rental3.jpg", "/images/rentals/rental1.jpg", "/images/rentals/rental2.jpg", "/images/rentals/rental4.jpg"},
			Description: strptr("Step directly onto the sand from this intimate beachfront bungalow with stunning sunset views every evening."),
			Amenities:   []string{"Beach Access", "Ocean View", "Terrace", "Air Conditioning", "Furnished", "WiFi", "Outdoor Shower", "Hammock"},
			IsAvailable: true,
		},
		{
			ID:          "8",
			Name:        "Mountain View Estate",
			Location:    "Chiang Mai",
			Address:     "777 Doi Suthep Road, Chiang Mai 50200",
			Beds:        5,
			Baths:       4,
			Area:        3500,
			Price:       55000,
			Type:        "Villa",
			Image:       "/images/rentals/rental4.jpg",
			Images:      []string{"/images/rentals/rental4.jpg", "/images/rentals/rental1.jpg", "/images/rentals/rental2.jpg", "/images/rentals/rental3.jpg"},
			Description: strptr("A grand estate with sweeping views of Doi Suthep, generous living spaces, an infinity pool and landscaped gardens."),
			Amenities:   []string{"Mountain View", "Infinity Pool", "Garden", "Air Conditioning", "Furnished", "Security", "Parking", "Home Office"},
			IsAvailable: true,
		},
	}
}
