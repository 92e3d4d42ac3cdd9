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

	"go-crm-management/controllers"
	"go-crm-management/database"
	"go-crm-management/middleware"
	"go-crm-management/repositories"
	"go-crm-management/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("Error loading .env file: %v", err)
		}
	} else {
		log.Println(".env file not found, using process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	client, err := database.Connect(context.Background())
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	customerRepository := repositories.NewCustomerRepository(database.OpenCollection(client, "customer"))
	itemRepository := repositories.NewItemRepository(database.OpenCollection(client, "item"))
	orderRepository := repositories.NewOrderRepository(database.OpenCollection(client, "order"))
	orderItemRepository := repositories.NewOrderItemRepository(database.OpenCollection(client, "orderItem"))

	customerController := controllers.NewCustomerController(customerRepository, orderRepository)
	itemController := controllers.NewItemController(itemRepository)
	orderController := controllers.NewOrderController(orderRepository, customerRepository)
	orderItemController := controllers.NewOrderItemController(orderItemRepository)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Metrics())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", controllers.Health(client))
	router.GET("/metrics", middleware.MetricsHandler())

	routes.CustomerRoutes(router, customerController)
	routes.ItemRoutes(router, itemController)
	routes.OrderRoutes(router, orderController, orderItemController)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("Listening on :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("db disconnect: %v", err)
	}
}
