package provider

import (
	"github.com/tacgear-next/internal/cache"
	"github.com/tacgear-next/internal/config"
	"github.com/tacgear-next/internal/logger"
	"github.com/tacgear-next/internal/models"
	"github.com/tacgear-next/internal/queue"
	"github.com/tacgear-next/internal/repository"
	"github.com/tacgear-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CategoryRepo  repository.CategoryRepository
	ProductRepo   repository.ProductRepository
	StoreRepo     repository.StoreLocationRepository
	InventoryRepo repository.InventoryRepository
	CartRepo      repository.CartRepository
	WishlistRepo  repository.WishlistRepository

	// Services
	CatalogService   *service.CatalogService
	StoreService     *service.StoreService
	InventoryService *service.InventoryService
	CartService      *service.CartService
	WishlistService  *service.WishlistService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.StoreRepo = repository.NewStoreLocationRepository(db)
	c.InventoryRepo = repository.NewInventoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
}

func (c *Container) initServices() {
	cfg := c.Config
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo)
	c.StoreService = service.NewStoreService(c.StoreRepo)
	c.InventoryService = service.NewInventoryService(
		c.InventoryRepo,
		c.StoreRepo,
		c.ProductRepo,
		c.QueueClient,
		cfg.Inventory.NegativeStock,
		cfg.Inventory.DefaultLowStockThreshold,
	)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.InventoryRepo, cfg.Cart.CheckStock)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
}
