package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/baanfinder/baanfinder-backend/internal/geo"
	"github.com/baanfinder/baanfinder-backend/internal/locale"
	"github.com/baanfinder/baanfinder-backend/internal/property"
	"github.com/baanfinder/baanfinder-backend/internal/rental"
	"github.com/baanfinder/baanfinder-backend/internal/user"
	"github.com/baanfinder/baanfinder-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB()
	defer db.Close()

	ensureSchema(db)

	propertyRepo := property.NewPostgresRepository(db)
	propertyService := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertyService)

	seedProperties(db, propertyRepo)

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)

	rentalHandler := rental.NewHandler(rental.NewService(rental.NewPostgresRepository(db)))

	// one shared wishlist store for this installation, hydrated once from
	// its JSON document
	store := wishlist.NewStore(wishlist.NewFileStorage(os.Getenv("WISHLIST_FILE")))
	wishlistHandler := wishlist.NewHandler(store)

	projector := geo.NewProjector(geo.DefaultGazetteer())
	mapHandler := geo.NewHandler(propertyService, projector)

	// admin catalog edits drop the memoized marker coordinates
	propertyService.OnChange(projector.Invalidate)

	localeHandler := locale.NewHandler()

	// public surface first so the JWT middleware below never sees it
	userHandler.RegisterPublicRoutes(app)
	propertyHandler.RegisterPublicRoutes(app)
	wishlistHandler.RegisterPublicRoutes(app)
	mapHandler.RegisterPublicRoutes(app)
	localeHandler.RegisterPublicRoutes(app)

	// uploaded listing photos
	app.Static("/uploads", "./uploads")

	jwtSecret := os.Getenv("JWT_SECRET")
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(jwtSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	propertyHandler.RegisterProtectedRoutes(app)
	rentalHandler.RegisterProtectedRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("starting server on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%v)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB() *sql.DB {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func ensureSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS property (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		name_th TEXT,
		location TEXT NOT NULL,
		location_th TEXT,
		address TEXT,
		beds INT NOT NULL DEFAULT 0,
		baths INT NOT NULL DEFAULT 0,
		area INT NOT NULL DEFAULT 0,
		price INT NOT NULL DEFAULT 0,
		type TEXT,
		image TEXT,
		images TEXT[],
		description TEXT,
		amenities TEXT[],
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TEXT,
		updated_at TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_user (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'user',
		image TEXT,
		created_at TEXT,
		updated_at TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS rental (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		property_id TEXT NOT NULL,
		start_date TEXT,
		end_date TEXT,
		monthly_rent INT NOT NULL DEFAULT 0,
		status TEXT
	)`); err != nil {
		panic(err)
	}
}

// seedProperties fills an empty catalog with the reference listings.
func seedProperties(db *sql.DB, repo *property.PostgresRepository) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM property`).Scan(&count); err != nil || count > 0 {
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range property.DefaultSeed() {
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := repo.Create(p); err != nil {
			fmt.Printf("warning: could not seed property %s: %v\n", p.ID, err)
		}
	}
}
