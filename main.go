package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"spothotel-backend/config"
	"spothotel-backend/controllers"
	"spothotel-backend/queue"
	"spothotel-backend/repository"
	"spothotel-backend/routes"
	"spothotel-backend/services"
	"spothotel-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is required")
	}
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is required")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connected")

	hotels := repository.NewHotelRepository(config.DB)
	rooms := repository.NewRoomRepository(config.DB)
	bookings := repository.NewBookingRepository(config.DB)

	var publisher *queue.Publisher
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		var err error
		publisher, err = queue.NewPublisher(amqpURL)
		if err != nil {
			log.Fatalf("Failed to connect to message broker: %v", err)
		}
		defer publisher.Close()
		log.Println("Message broker connected")
	}

	gateway := services.NewStripeGateway(stripeKey)
	bookingService := services.NewBookingService(config.DB, hotels, rooms, bookings, gateway, publisher)
	hotelService := services.NewHotelService(config.DB)
	roomService := services.NewRoomService(config.DB)
	userService := services.NewUserService(config.DB)

	ac := controllers.NewAuthController(userService)
	uc := controllers.NewUserController(userService)
	hc := controllers.NewHotelController(hotelService)
	rc := controllers.NewRoomController(roomService)
	bc := controllers.NewBookingController(bookingService, gateway)

	router := routes.SetupRouter(ac, uc, hc, rc, bc)

	port := utils.EnvOrDefault("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
