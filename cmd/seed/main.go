package main

import (
	"context"
	"log"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/repository"
)

// Seeds a local SQLite database with a small marketplace: a few users,
// items, one open item request and a finished booking so comments can
// be exercised right away.
func main() {
	db, err := database.Connect("shareit.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM items")
	db.Exec("DELETE FROM item_requests")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	requests := repository.NewRequestRepository(db)
	bookings := repository.NewBookingRepository(db)
	comments := repository.NewCommentRepository(db)

	log.Println("Creating users...")
	alice := &domain.User{Name: "Alice", Email: "alice@shareit.local"}
	bob := &domain.User{Name: "Bob", Email: "bob@shareit.local"}
	carol := &domain.User{Name: "Carol", Email: "carol@shareit.local"}
	for _, u := range []*domain.User{alice, bob, carol} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("create user:", err)
		}
	}

	log.Println("Creating items...")
	drill := &domain.Item{Name: "Cordless drill", Description: "18V drill with two batteries", Available: true, OwnerID: alice.ID}
	tent := &domain.Item{Name: "Camping tent", Description: "3-person tent, waterproof", Available: true, OwnerID: bob.ID}
	ladder := &domain.Item{Name: "Step ladder", Description: "2m aluminium ladder", Available: false, OwnerID: alice.ID}
	for _, i := range []*domain.Item{drill, tent, ladder} {
		if err := items.Create(ctx, i); err != nil {
			log.Fatal("create item:", err)
		}
	}

	log.Println("Creating item request...")
	req := &domain.ItemRequest{Description: "Looking for a pressure washer", RequesterID: carol.ID, CreatedAt: time.Now()}
	if err := requests.Create(ctx, req); err != nil {
		log.Fatal("create request:", err)
	}

	log.Println("Creating bookings...")
	finished := &domain.Booking{
		ItemID:   drill.ID,
		BookerID: bob.ID,
		Start:    time.Now().Add(-72 * time.Hour),
		End:      time.Now().Add(-48 * time.Hour),
		Status:   domain.BookingApproved,
	}
	upcoming := &domain.Booking{
		ItemID:   tent.ID,
		BookerID: carol.ID,
		Start:    time.Now().Add(48 * time.Hour),
		End:      time.Now().Add(96 * time.Hour),
		Status:   domain.BookingWaiting,
	}
	for _, b := range []*domain.Booking{finished, upcoming} {
		if err := bookings.Create(ctx, b); err != nil {
			log.Fatal("create booking:", err)
		}
	}

	log.Println("Creating comment...")
	cm := &domain.Comment{
		Text:      "Powerful drill, batteries lasted the whole weekend.",
		ItemID:    drill.ID,
		AuthorID:  bob.ID,
		CreatedAt: time.Now(),
	}
	if err := comments.Create(ctx, cm); err != nil {
		log.Fatal("create comment:", err)
	}

	log.Println("Seed complete.")
}
