package main

import (
	"context"
	"log"
	"os"
	"time"

	"furnshop/internal/controllers/http"
	mmysql "furnshop/internal/infra/mysql"
	"furnshop/internal/infra/rabbitmq"
	mysqlrepo "furnshop/internal/repository/mysql"
	"furnshop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1000)
	sqlDB.SetMaxIdleConns(200)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)

	var publisher rabbitmq.PublisherInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		p, err := rabbitmq.NewPublisher(url, "shop.events")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RABBITMQ_URL not set, order events disabled")
	}

	orderService := services.NewOrderService(orderRepo, publisher)
	catalogService := services.NewCatalogService(productRepo)

	rootAdmin := os.Getenv("ROOT_ADMIN_NAME")
	if rootAdmin == "" {
		rootAdmin = "Awoke"
	}
	userService := services.NewUserService(userRepo, rootAdmin)

	if pwd := os.Getenv("ROOT_ADMIN_PASSWORD"); pwd != "" {
		if err := userService.EnsureRootAdmin(os.Getenv("ROOT_ADMIN_EMAIL"), pwd); err != nil {
			log.Fatalf("failed to seed root admin: %v", err)
		}
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         host + ":6379",
			DB:           0,
			PoolSize:     200,
			MinIdleConns: 20,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		orderService.SetRedisClient(redisClient)
		catalogService.SetRedisClient(redisClient)

		go func() {
			time.Sleep(5 * time.Second)
			products, err := productRepo.FindAll()
			if err != nil {
				log.Printf("failed to list products for cache warmup: %v", err)
				return
			}
			ids := make([]uint64, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			if err := catalogService.WarmupCache(context.Background(), ids); err != nil {
				log.Printf("failed to warm up cache: %v", err)
			} else {
				log.Println("catalog cache warmed up")
			}
		}()
	}

	handler := http.NewHandler(orderService, catalogService, userService, []byte(jwtSecret))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("starting storefront on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
