package main // Entry point package

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tadelakiran/Book-Library-Management/internal/config"
	"github.com/tadelakiran/Book-Library-Management/internal/handler"
	"github.com/tadelakiran/Book-Library-Management/internal/lending"
	appmw "github.com/tadelakiran/Book-Library-Management/internal/middleware"
	"github.com/tadelakiran/Book-Library-Management/internal/queue"
	"github.com/tadelakiran/Book-Library-Management/internal/repository"
	"github.com/tadelakiran/Book-Library-Management/internal/router"
	"github.com/tadelakiran/Book-Library-Management/internal/seed"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response caching disabled")
	}

	st, err := openStore(cfg, rdb)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	if err := seed.Ensure(context.Background(), st, cfg.BcryptCost); err != nil {
		log.Fatalf("seed store: %v", err)
	}

	books := repository.NewBookRepo(st)
	categories := repository.NewCategoryRepo(st, books)
	users := repository.NewUserRepo(st)
	records := repository.NewBorrowRepo(st)
	engine := lending.NewEngine(books, categories, users, records)

	// Background consumer mirrors loan activity into logs/lending.log.
	go func() {
		if err := queue.StartLoanConsumer(); err != nil {
			log.Printf("loan consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := appmw.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.Register(e, router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users),
		Books:      handler.NewBookHandler(books),
		Categories: handler.NewCategoryHandler(categories),
		Users:      handler.NewUserHandler(users),
		Lending:    handler.NewLendingHandler(engine, books),
		Reports:    handler.NewReportHandler(engine),
	}, cfg.JWTSecret, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openStore selects the durable store driver from config.  The Redis
// driver shares the client used for rate limiting and caching.
func openStore(cfg config.Config, rdb *redis.Client) (store.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		log.Printf("using in-memory store; data will not survive restarts")
		return store.NewMemory(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("store driver redis selected but redis is unreachable")
		}
		return store.NewRedis(rdb, cfg.StorePrefix), nil
	case "mysql":
		return store.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
