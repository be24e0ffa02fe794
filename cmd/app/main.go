package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"yatra/cmd/fx/account_fx"
	"yatra/cmd/fx/ai_fx"
	"yatra/cmd/fx/catalog_fx"
	"yatra/cmd/fx/controllers_fx"
	"yatra/cmd/fx/db_fx"
	"yatra/cmd/fx/forum_fx"
	"yatra/cmd/fx/itinerary_fx"
	"yatra/cmd/fx/memcache_fx"
	"yatra/cmd/fx/weather_fx"
	"yatra/internal/api/controllers"
	"yatra/internal/services"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,
		forum_fx.Module,
		weather_fx.Module,
		ai_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(IndexCatalogEmbeddings),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// IndexCatalogEmbeddings backfills place vectors on startup so the similar
// places endpoint works without a separate indexing job.
func IndexCatalogEmbeddings(lc fx.Lifecycle, embeddingService services.EmbeddingServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := embeddingService.IndexCatalog(context.Background()); err != nil {
					log.Printf("Failed to index catalog embeddings: %v", err)
				}
			}()
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	placesController *controllers.PlacesController,
	itineraryController *controllers.ItineraryController,
	weatherController *controllers.WeatherController,
	forumController *controllers.ForumController,
	tipsController *controllers.TipsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		placesController,
		itineraryController,
		weatherController,
		forumController,
		tipsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	placesController *controllers.PlacesController,
	itineraryController *controllers.ItineraryController,
	weatherController *controllers.WeatherController,
	forumController *controllers.ForumController,
	tipsController *controllers.TipsController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	r.GET("/places", placesController.ListPlaces)
	r.GET("/places/featured", placesController.ListFeatured)
	r.GET("/places/:id", placesController.GetPlace)
	r.GET("/places/:id/similar", placesController.SimilarPlaces)
	r.GET("/restaurants", placesController.ListRestaurants)
	r.GET("/locations", placesController.ListLocations)

	r.POST("/itineraries/generate", itineraryController.Generate)
	r.GET("/weather", weatherController.CurrentWeather)
	r.POST("/tips", tipsController.TripTips)

	forum := r.Group("/forum")
	forum.GET("/posts", forumController.ListPosts)
	forum.GET("/posts/:id", forumController.GetPost)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.GET("/accounts/me", accountController.Me)
	authed.POST("/itineraries", itineraryController.Save)
	authed.GET("/itineraries", itineraryController.List)
	authed.GET("/itineraries/:id", itineraryController.Details)
	authed.PUT("/itineraries/:id", itineraryController.Update)
	authed.DELETE("/itineraries/:id", itineraryController.Delete)
	authed.POST("/forum/posts", forumController.CreatePost)
	authed.POST("/forum/posts/:id/replies", forumController.CreateReply)
	authed.DELETE("/forum/posts/:id", forumController.DeletePost)
}
