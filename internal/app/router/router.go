package router

import (
	"github.com/gin-gonic/gin"

	authhandler "grocery_backend/internal/feature/auth/transport/handler"
	buckethandler "grocery_backend/internal/feature/bucket/transport/handler"
	categoryhandler "grocery_backend/internal/feature/category/transport/handler"
	entrieshandler "grocery_backend/internal/feature/entries/transport/handler"
	supermarkethandler "grocery_backend/internal/feature/supermarket/transport/handler"
	"grocery_backend/internal/platform/http/handler"
	jwtmw "grocery_backend/internal/platform/jwt"
)

// NewRouter builds the HTTP route table. resolver backs the auth middleware
// that guards the owner-scoped routes.
func NewRouter(
	resolver jwtmw.UserResolver,
	auth *authhandler.AuthHandler,
	category *categoryhandler.CategoryHandler,
	supermarket *supermarkethandler.SuperMarketHandler,
	bucket *buckethandler.BucketHandler,
	entries *entrieshandler.EntriesHandler,
) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/users", auth.Register)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)

	// categories and supermarkets are global, unauthenticated resources
	r.GET("/categories", category.List)
	r.POST("/categories", category.Create)
	r.GET("/categories/:id", category.Get)
	r.DELETE("/categories/:id", category.Delete)

	r.GET("/supermarkets", supermarket.List)
	r.POST("/supermarkets", supermarket.Create)
	r.GET("/supermarkets/:id", supermarket.Get)
	r.DELETE("/supermarkets/:id", supermarket.Delete)

	// 認証必須のルート
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired(resolver))
	{
		authed.GET("/buckets", bucket.List)
		authed.POST("/buckets", bucket.Create)
		authed.GET("/buckets/:id", bucket.Get)
		authed.DELETE("/buckets/:id", bucket.Delete)

		authed.GET("/entries", entries.ListNotPurchased)
		authed.POST("/entries", entries.Add)
	}

	return r
}
