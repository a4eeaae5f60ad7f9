package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"kainan/internal/config"
	"kainan/internal/model"
	"kainan/internal/repository"
	"kainan/internal/service"
	"kainan/internal/store"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}

	userRepo := repository.NewUserRepository(st)
	ulamRepo := repository.NewUlamRepository(st)
	reservationRepo := repository.NewReservationRepository(st)
	ctx := context.Background()

	// Touching each collection creates the backing file as [] when absent.
	if _, err := userRepo.Count(ctx); err != nil {
		log.Fatalf("Failed to initialize users collection: %v", err)
	}
	if _, err := reservationRepo.List(ctx); err != nil {
		log.Fatalf("Failed to initialize reserve collection: %v", err)
	}

	existing, err := ulamRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to read ulams collection: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Menu already has %d items, leaving it untouched", len(existing))
	} else {
		menu := sampleMenu()
		if err := ulamRepo.ReplaceAll(ctx, menu); err != nil {
			log.Fatalf("Failed to seed menu: %v", err)
		}
		log.Printf("Seeded %d menu items", len(menu))
	}

	accountService := service.NewAccountService(userRepo)
	if err := accountService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}
	log.Printf("Admin account ready (%s)", cfg.AdminEmail)

	log.Println("Seed completed successfully!")
}

func sampleMenu() []model.Ulam {
	return []model.Ulam{
		{
			ID:             1,
			Name:           "Beef Caldereta",
			Stall:          1,
			UlamOnlyPrice:  price(60),
			WithRicePrice:  price(75),
			Image:          "/images/caldereta.png",
			Description:    "Slow-cooked beef stew in tomato sauce with potatoes and bell peppers.",
			Ingredients:    []string{"beef", "tomato sauce", "potatoes", "carrots", "bell peppers", "liver spread"},
			Allergens:      []string{"soy"},
			IsUlamOfTheDay: true,
		},
		{
			ID:            2,
			Name:          "Chicken Adobo",
			Stall:         1,
			UlamOnlyPrice: price(50),
			WithRicePrice: price(65),
			Image:         "/images/adobo.png",
			Description:   "Chicken braised in soy sauce, vinegar and garlic.",
			Ingredients:   []string{"chicken", "soy sauce", "vinegar", "garlic", "bay leaves", "peppercorn"},
			Allergens:     []string{"soy"},
		},
		{
			ID:            3,
			Name:          "Chicken Curry",
			Stall:         2,
			UlamOnlyPrice: price(55),
			WithRicePrice: price(70),
			Image:         "/images/chicken.png",
			Description:   "Chicken simmered in coconut milk and curry spices.",
			Ingredients:   []string{"chicken", "coconut milk", "curry powder", "potatoes", "carrots"},
			Allergens:     []string{"coconut"},
		},
		{
			ID:            4,
			Name:          "Pork Tonkatsu",
			Stall:         2,
			UlamOnlyPrice: price(70),
			WithRicePrice: price(85),
			Image:         "/images/tonkatsu.png",
			Description:   "Breaded pork cutlet, deep-fried and served with tonkatsu sauce.",
			Ingredients:   []string{"pork loin", "breadcrumbs", "egg", "flour", "tonkatsu sauce"},
			Allergens:     []string{"gluten", "egg", "soy"},
		},
	}
}

func price(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}
