package router

import (
	"fmt"
	"strings"

	"github.com/tacgear-next/internal/cache"
	"github.com/tacgear-next/internal/config"
	publichandlers "github.com/tacgear-next/internal/http/handlers/public"
	"github.com/tacgear-next/internal/logger"
	"github.com/tacgear-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "tg"
	}
	redisClient := cache.Client()
	writeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:write", redisPrefix),
		WindowSeconds: cfg.Security.WriteRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.WriteRateLimit.MaxRequests,
	}
	writeLimit := RateLimitMiddleware(redisClient, writeRule, KeyByIP)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	api := r.Group("/api")
	{
		api.GET("/categories", publicHandler.GetCategories)
		api.GET("/products", publicHandler.GetProducts)
		// gin 要求同一段路径的通配名一致，商品详情与分店库存共用 :slug，
		// 库存路由按数字 ID 解析该参数。
		api.GET("/products/:slug", publicHandler.GetProductBySlug)
		api.GET("/products/:slug/inventory", publicHandler.GetProductInventory)

		api.GET("/stores", publicHandler.GetStores)
		api.GET("/stores/:slug", publicHandler.GetStoreBySlug)

		api.GET("/cart", publicHandler.GetCart)
		api.POST("/cart", writeLimit, publicHandler.AddCartItem)
		api.PATCH("/cart/:id", writeLimit, publicHandler.UpdateCartItem)
		api.DELETE("/cart/:id", writeLimit, publicHandler.RemoveCartItem)
		api.DELETE("/cart", writeLimit, publicHandler.ClearCart)

		api.GET("/wishlist", publicHandler.GetWishlist)
		api.POST("/wishlist", writeLimit, publicHandler.AddWishlistItem)
		api.DELETE("/wishlist/:id", writeLimit, publicHandler.RemoveWishlistItem)

		api.GET("/inventory", publicHandler.QueryInventory)
		api.POST("/inventory", writeLimit, publicHandler.CreateInventoryRecord)
		api.GET("/inventory/:id", publicHandler.GetInventoryRecord)
		api.GET("/inventory/:id/transactions", publicHandler.GetInventoryTransactions)
		api.POST("/inventory/:id/transactions", writeLimit, publicHandler.CreateInventoryTransaction)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
