// Command seed wipes and repopulates the database with a default admin user
// and sample destinations and testimonials for local development.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"travelo-api/internal/config"
	"travelo-api/internal/database"
	"travelo-api/internal/logger"
	"travelo-api/internal/model"
	"travelo-api/internal/repository"
)

var sampleDestinations = []model.Destination{
	{Name: "Dhaka", Location: "Bangladesh", Image: "https://images.unsplash.com/photo-1585241645927-c7a8e5840c42?w=800&h=600&fit=crop", Rating: 4.5, Price: 299, Description: "The vibrant capital city of Bangladesh with rich culture and history", Featured: true},
	{Name: "Paris", Location: "Eiffel Tower, France", Image: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800&h=600&fit=crop", Rating: 4.8, Price: 1299, Description: "The city of love and lights, home to the iconic Eiffel Tower", Featured: true},
	{Name: "Taj Mahal", Location: "Agra, India", Image: "https://images.unsplash.com/photo-1564507592333-c60657eea523?w=800&h=600&fit=crop", Rating: 4.9, Price: 899, Description: "One of the Seven Wonders of the World, a monument of eternal love", Featured: true},
	{Name: "Dubai", Location: "Burj Khalifa, UAE", Image: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&h=600&fit=crop", Rating: 4.7, Price: 1599, Description: "Modern marvel in the desert with stunning architecture", Featured: true},
	{Name: "New York", Location: "Times Square, USA", Image: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800&h=600&fit=crop", Rating: 4.6, Price: 1899, Description: "The city that never sleeps, full of energy and opportunities", Featured: true},
}

var sampleTestimonials = []model.Testimonial{
	{Name: "John Doe", Role: "Travel Blogger", Image: "https://i.pravatar.cc/150?img=12", Rating: 5, Comment: "Travelo made my trip planning easy. Great destinations and excellent service.", Featured: true},
	{Name: "Sarah Smith", Role: "Adventure Enthusiast", Image: "https://i.pravatar.cc/150?img=45", Rating: 5, Comment: "Best travel agency experience. Perfect family vacation planning.", Featured: true},
	{Name: "Mike Johnson", Role: "Business Traveler", Image: "https://i.pravatar.cc/150?img=33", Rating: 4, Comment: "Professional service with great attention to detail. Very satisfied.", Featured: true},
	{Name: "Emma Wilson", Role: "Solo Traveler", Image: "https://i.pravatar.cc/150?img=47", Rating: 5, Comment: "Felt safe and supported throughout my entire journey.", Featured: true},
}

func main() {
	logHandler := logger.New(os.Stdout, os.Getenv("APP_ENV"), slog.LevelInfo)
	slog.SetDefault(slog.New(logHandler))

	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db.Pool)
	destinationRepo := repository.NewDestinationRepository(db.Pool)
	testimonialRepo := repository.NewTestimonialRepository(db.Pool)

	if err := userRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := destinationRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := testimonialRepo.DeleteAll(ctx); err != nil {
		return err
	}

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@travelo.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "Admin@123456")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), cfg.BcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := model.User{
		ID:           uuid.NewString(),
		Email:        adminEmail,
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	slog.Info("admin user created", "email", adminEmail)

	for _, destination := range sampleDestinations {
		destination.ID = uuid.NewString()
		destination.CreatedAt = now
		destination.UpdatedAt = now
		if err := destinationRepo.Create(ctx, destination); err != nil {
			return err
		}
	}
	slog.Info("destinations seeded", "count", len(sampleDestinations))

	for _, testimonial := range sampleTestimonials {
		testimonial.ID = uuid.NewString()
		testimonial.CreatedAt = now
		testimonial.UpdatedAt = now
		if err := testimonialRepo.Create(ctx, testimonial); err != nil {
			return err
		}
	}
	slog.Info("testimonials seeded", "count", len(sampleTestimonials))

	return nil
}

func envOr(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}
