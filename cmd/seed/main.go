package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/Eursukkul/travel-listings/config"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/Eursukkul/travel-listings/internal/seed"
	"github.com/Eursukkul/travel-listings/pkg/database"
)

func main() {
	defaults := seed.DefaultOptions()
	listings := flag.Int("listings", defaults.Listings, "number of listings to create")
	bookings := flag.Int("bookings", defaults.Bookings, "number of bookings to create")
	reviews := flag.Int("reviews", defaults.Reviews, "number of reviews to create")
	clearFirst := flag.Bool("clear", false, "delete existing reviews, bookings and listings first")
	seedValue := flag.Uint64("seed-value", 0, "random seed for a reproducible run (0 uses the clock)")
	flag.Parse()

	if *listings < 0 || *bookings < 0 || *reviews < 0 {
		log.Fatal("counts must not be negative")
	}

	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	s := *seedValue
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	log.Printf("[Seed] random seed %d", s)

	seeder := seed.NewSeeder(
		repository.NewListingRepository(db),
		repository.NewBookingRepository(db),
		repository.NewReviewRepository(db),
		rand.New(rand.NewPCG(s, s>>1)),
	)

	_, err := seeder.Run(context.Background(), seed.Options{
		Listings: *listings,
		Bookings: *bookings,
		Reviews:  *reviews,
		Clear:    *clearFirst,
	})
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
