package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/baanfinder/baanfinder-backend/internal/geo"
	"github.com/baanfinder/baanfinder-backend/internal/locale"
	"github.com/baanfinder/baanfinder-backend/internal/property"
	"github.com/baanfinder/baanfinder-backend/internal/rental"
	"github.com/baanfinder/baanfinder-backend/internal/user"
	"github.com/baanfinder/baanfinder-backend/internal/wishlist"
)

// main starts a DB-free server over in-memory repositories seeded with the
// reference catalog. Useful for frontend development and demos.
func main() {
	app := fiber.New()
	app.Use(cors.New())

	propertyService := property.NewService(property.NewInMemoryRepository(property.DefaultSeed()))
	propertyHandler := property.NewHandler(propertyService)

	userService := user.NewService(user.NewInMemoryRepository(nil))
	userHandler := user.NewHandler(userService)

	rentalRepo := rental.NewInMemoryRepository(nil, func(propertyID string) *rental.PropertyInfo {
		p, err := propertyService.GetByID(propertyID)
		if err != nil {
			return nil
		}
		return &rental.PropertyInfo{Name: p.Name, Location: p.Location, Image: p.Image}
	})
	rentalHandler := rental.NewHandler(rental.NewService(rentalRepo))

	store := wishlist.NewStore(wishlist.NewFileStorage(os.Getenv("WISHLIST_FILE")))
	wishlistHandler := wishlist.NewHandler(store)

	projector := geo.NewProjector(geo.DefaultGazetteer())
	mapHandler := geo.NewHandler(propertyService, projector)
	propertyService.OnChange(projector.Invalidate)

	userHandler.RegisterPublicRoutes(app)
	propertyHandler.RegisterPublicRoutes(app)
	wishlistHandler.RegisterPublicRoutes(app)
	mapHandler.RegisterPublicRoutes(app)
	locale.NewHandler().RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	}))

	userHandler.RegisterProtectedRoutes(app)
	propertyHandler.RegisterProtectedRoutes(app)
	rentalHandler.RegisterProtectedRoutes(app)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("starting in-memory server on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
