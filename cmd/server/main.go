package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"grocery_backend/internal/app/router"
	authadapters "grocery_backend/internal/feature/auth/adapters"
	authhandler "grocery_backend/internal/feature/auth/transport/handler"
	authusecase "grocery_backend/internal/feature/auth/usecase"
	bucketadapters "grocery_backend/internal/feature/bucket/adapters"
	buckethandler "grocery_backend/internal/feature/bucket/transport/handler"
	bucketusecase "grocery_backend/internal/feature/bucket/usecase"
	categoryadapters "grocery_backend/internal/feature/category/adapters"
	categoryhandler "grocery_backend/internal/feature/category/transport/handler"
	categoryusecase "grocery_backend/internal/feature/category/usecase"
	entriesadapters "grocery_backend/internal/feature/entries/adapters"
	entrieshandler "grocery_backend/internal/feature/entries/transport/handler"
	entriesusecase "grocery_backend/internal/feature/entries/usecase"
	supermarketadapters "grocery_backend/internal/feature/supermarket/adapters"
	supermarkethandler "grocery_backend/internal/feature/supermarket/transport/handler"
	supermarketusecase "grocery_backend/internal/feature/supermarket/usecase"
	"grocery_backend/internal/platform/cache"
	infradb "grocery_backend/internal/platform/db"
	jwtmw "grocery_backend/internal/platform/jwt"
	infraredis "grocery_backend/internal/platform/redis"
	"grocery_backend/internal/shared/ratelimiter"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	generator := jwtmw.NewGenerator(secret, jwtmw.AccessTokenTTL)
	validator := jwtmw.NewValidator(secret)

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	categoryRepo := cache.NewCachingCategoryRepository(rdb, 5*time.Minute,
		categoryadapters.NewCategoryRepository(db), "categories")
	supermarketRepo := supermarketadapters.NewSuperMarketRepository(db)
	bucketRepo := bucketadapters.NewBucketRepository(db)
	entryRepo := entriesadapters.NewEntryRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, generator, validator)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo)
	supermarketUC := supermarketusecase.NewSuperMarketUsecase(supermarketRepo)
	bucketUC := bucketusecase.NewBucketUsecase(bucketRepo)
	entriesUC := entriesusecase.NewEntriesUsecase(entryRepo)

	// Handler
	loginLimiter := ratelimiter.NewRateLimiter(30, time.Minute)
	authH := authhandler.NewAuthHandler(authUC, loginLimiter)
	categoryH := categoryhandler.NewCategoryHandler(categoryUC)
	supermarketH := supermarkethandler.NewSuperMarketHandler(supermarketUC)
	bucketH := buckethandler.NewBucketHandler(bucketUC)
	entriesH := entrieshandler.NewEntriesHandler(entriesUC)

	// ルータ生成
	r := router.NewRouter(authUC, authH, categoryH, supermarketH, bucketH, entriesH)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
