package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"hotelhunt/internal/config"
	"hotelhunt/internal/db"
	"hotelhunt/internal/model"
	"hotelhunt/internal/repository"
)

// SeedHotelData represents one catalog entry in the seed file.
type SeedHotelData struct {
	Name          string      `json:"name"`
	ImageOfRoom   string      `json:"imageofroom"`
	Loc           string      `json:"loc"`
	PricePerNight json.Number `json:"pricepernight"`
	Amenities     string      `json:"amenities"`
	AreaOfRoom    string      `json:"areaofroom"`
}

// defaultCatalog seeds a usable directory when no SEED_FILE is given.
var defaultCatalog = []SeedHotelData{
	{Name: "Seaside Palms Resort", ImageOfRoom: "https://images.example.com/seaside-palms.jpg", Loc: "Goa", PricePerNight: "4500", Amenities: "Pool,Wifi,Breakfast,Spa", AreaOfRoom: "420 sq ft Deluxe"},
	{Name: "Hilltop Retreat", ImageOfRoom: "https://images.example.com/hilltop.jpg", Loc: "Manali", PricePerNight: "3200", Amenities: "Wifi,Heater,Parking", AreaOfRoom: "350 sq ft Standard"},
	{Name: "City Lights Inn", ImageOfRoom: "https://images.example.com/citylights.jpg", Loc: "Mumbai", PricePerNight: "2800", Amenities: "Wifi,AC,Room Service", AreaOfRoom: "300 sq ft Compact"},
	{Name: "Lakeview Grand", ImageOfRoom: "https://images.example.com/lakeview.jpg", Loc: "Udaipur", PricePerNight: "6000", Amenities: "Pool,Wifi,Lake View,Bar", AreaOfRoom: "550 sq ft Suite"},
	{Name: "Desert Rose Hotel", ImageOfRoom: "https://images.example.com/desert-rose.jpg", Loc: "Jaisalmer", PricePerNight: "200", Amenities: "Wifi,Camel Safari,Breakfast", AreaOfRoom: "280 sq ft Budget"},
}

func main() {
	log.Println("Starting hotel catalog seed...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Hotel{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	catalog := defaultCatalog
	if cfg.SeedFile != "" {
		log.Printf("Loading catalog from: %s", cfg.SeedFile)
		catalog, err = loadCatalog(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
	}
	log.Printf("Seeding %d hotels", len(catalog))

	hotelRepo := repository.NewHotelRepository(gormDB)
	ctx := context.Background()

	seeded, skipped := 0, 0
	for _, item := range catalog {
		price, err := decimal.NewFromString(item.PricePerNight.String())
		if err != nil {
			log.Printf("Skipping hotel %q with invalid price: %s", item.Name, item.PricePerNight)
			skipped++
			continue
		}

		hotel := model.Hotel{
			Name:          item.Name,
			ImageOfRoom:   item.ImageOfRoom,
			Loc:           item.Loc,
			PricePerNight: price,
			Amenities:     item.Amenities,
			AreaOfRoom:    item.AreaOfRoom,
		}
		if err := hotelRepo.Create(ctx, &hotel); err != nil {
			log.Fatalf("Failed to seed hotel %q: %v", item.Name, err)
		}
		seeded++
	}

	log.Printf("Seed complete: %d hotels created, %d skipped", seeded, skipped)
}

func loadCatalog(path string) ([]SeedHotelData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog []SeedHotelData
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}
