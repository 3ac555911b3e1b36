package app

import (
	"context"
	"fmt"
	"log"

	"photomarket/internal/config"
	"photomarket/internal/db"
	"photomarket/internal/handlers"
	"photomarket/internal/repository"
	"photomarket/internal/services"
	"photomarket/internal/session"
	"photomarket/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Deps is the wired object graph behind the HTTP server and the CLI commands.
type Deps struct {
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Sessions session.Store
	Storage  storage.Store
	Hub      *handlers.Hub

	Users      *services.UserService
	Identity   *services.IdentityService
	Listing    *services.ListingService
	Bookings   *services.BookingService
	Profiles   *services.ProfileService
	Categories *services.CategoryService
	Portfolio  *services.PortfolioService
	IDs        *services.IDMapService
}

// Open connects to Postgres, Redis and the object store and builds the services.
func Open(ctx context.Context, cfg *config.Config) (*Deps, error) {
	pool, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	d := &Deps{Pool: pool, Hub: handlers.NewHub()}

	d.Sessions, d.Redis = openSessions(ctx, cfg.Redis)

	d.Storage, err = storage.New(cfg.Storage)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	tokens, err := services.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL.Std())
	if err != nil {
		d.Close()
		return nil, err
	}

	users := repository.NewUserRepository(pool)
	photographers := repository.NewPhotographerRepository(pool)
	categories := repository.NewCategoryRepository(pool)
	portfolio := repository.NewPortfolioRepository(pool)
	bookings := repository.NewBookingRepository(pool)
	ids := repository.NewIDMapRepository(pool)

	uploader := services.NewUploader(d.Storage, cfg.Storage.MaxUploadBytes())

	d.Users = services.NewUserService(users, d.Sessions, tokens, cfg.Auth.RefreshTTL.Std())
	d.Identity = services.NewIdentityService(users, photographers, ids)
	d.Listing = services.NewListingService(photographers, categories, portfolio)
	d.Bookings = services.NewBookingService(bookings, categories, photographers, d.Hub)
	d.Profiles = services.NewProfileService(photographers, d.Listing, uploader)
	d.Categories = services.NewCategoryService(categories, photographers)
	d.Portfolio = services.NewPortfolioService(portfolio, photographers, uploader)
	d.IDs = services.NewIDMapService(ids, photographers)

	return d, nil
}

// openSessions uses Redis when it answers and the in-process store otherwise.
func openSessions(ctx context.Context, cfg config.RedisConfig) (session.Store, *redis.Client) {
	if cfg.Address == "" || cfg.Address == "memory" {
		log.Println("Sessions: in-memory store")
		return session.NewMemoryStore(), nil
	}

	client := session.NewRedisClient(cfg)
	if err := session.Ping(ctx, client); err != nil {
		log.Printf("Warning: %v; falling back to in-memory sessions", err)
		_ = client.Close()
		return session.NewMemoryStore(), nil
	}
	log.Printf("Sessions: redis at %s", cfg.Address)
	return session.NewRedisStore(client), client
}

func (d *Deps) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
}
