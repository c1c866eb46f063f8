package main

import (
	"github.com/tacgear-next/internal/config"
	"github.com/tacgear-next/internal/constants"
	"github.com/tacgear-next/internal/logger"
	"github.com/tacgear-next/internal/models"
	"github.com/tacgear-next/internal/repository"
	"github.com/tacgear-next/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)
	storeRepo := repository.NewStoreLocationRepository(models.DB)
	inventoryRepo := repository.NewInventoryRepository(models.DB)
	inventoryService := service.NewInventoryService(
		inventoryRepo, storeRepo, productRepo, nil,
		cfg.Inventory.NegativeStock, cfg.Inventory.DefaultLowStockThreshold,
	)

	// 添加分类
	categories := []models.Category{
		{Slug: "plate-carriers", Name: "Plate Carriers", Description: "Modular plate carriers and chest rigs", SortOrder: 1},
		{Slug: "helmets", Name: "Helmets", Description: "Ballistic and bump helmets", SortOrder: 2},
		{Slug: "apparel", Name: "Apparel", Description: "Combat shirts, pants and outerwear", SortOrder: 3},
		{Slug: "optics", Name: "Optics", Description: "Red dots, magnifiers and night vision", SortOrder: 4},
	}
	for _, cat := range categories {
		existing, err := categoryRepo.GetBySlug(cat.Slug)
		if err != nil {
			stdLog.Printf("Failed to look up category %s: %v", cat.Slug, err)
			continue
		}
		if existing != nil {
			stdLog.Printf("Category already exists: %s", cat.Slug)
			continue
		}
		if err := categoryRepo.Create(&cat); err != nil {
			stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
		} else {
			stdLog.Printf("Created category: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	categoryList, err := categoryRepo.List()
	if err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加门店
	lat1, lng1 := 36.1627, -86.7816
	lat2, lng2 := 33.4484, -112.0740
	stores := []models.StoreLocation{
		{
			Slug: "nashville-hq", Name: "TacGear Nashville HQ",
			Address: "4510 Charlotte Ave", City: "Nashville", Region: "TN",
			PostalCode: "37209", Country: "US", Phone: "+1-615-555-0144",
			Latitude: &lat1, Longitude: &lng1, IsActive: true,
		},
		{
			Slug: "phoenix-outpost", Name: "TacGear Phoenix Outpost",
			Address: "2201 E Camelback Rd", City: "Phoenix", Region: "AZ",
			PostalCode: "85016", Country: "US", Phone: "+1-602-555-0188",
			Latitude: &lat2, Longitude: &lng2, IsActive: true,
		},
	}
	for _, store := range stores {
		existing, err := storeRepo.GetBySlug(store.Slug)
		if err != nil {
			stdLog.Printf("Failed to look up store %s: %v", store.Slug, err)
			continue
		}
		if existing != nil {
			stdLog.Printf("Store already exists: %s", store.Slug)
			continue
		}
		if err := storeRepo.Create(&store); err != nil {
			stdLog.Printf("Failed to create store %s: %v", store.Slug, err)
		} else {
			stdLog.Printf("Created store: %s", store.Slug)
		}
	}

	storeIDs := map[string]uint{}
	storeList, err := storeRepo.List(false)
	if err != nil {
		stdLog.Printf("Failed to load stores: %v", err)
	}
	for _, store := range storeList {
		storeIDs[store.Slug] = store.ID
	}

	// 添加商品（图片与规格随商品一并写入）
	salePrice := models.NewMoneyFromDecimal(decimal.NewFromFloat(219.99))
	products := []models.Product{
		{
			Slug:        "raptor-plate-carrier",
			Name:        "Raptor Modular Plate Carrier",
			Description: "Laser-cut MOLLE plate carrier with quick-release cummerbund, fits 10x12 plates.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(249.99)),
			SalePriceAmount: &salePrice,
			CategoryID:  categoryIDs["plate-carriers"],
			InStock:     true,
			Rating:      4.8,
			ReviewCount: 126,
			Featured:    true,
			BestSeller:  true,
			SortOrder:   1,
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1595590424283-b8f17842773f?w=800", Alt: "Raptor plate carrier front", SortOrder: 1},
				{URL: "https://images.unsplash.com/photo-1584467541268-b040f83be3fd?w=800", Alt: "Raptor plate carrier back", SortOrder: 2},
			},
			Variants: []models.ProductVariant{
				{VariantType: constants.VariantTypeColor, Name: "Ranger Green", Value: "ranger-green", InStock: true, SortOrder: 1},
				{VariantType: constants.VariantTypeColor, Name: "Coyote Brown", Value: "coyote-brown", InStock: true, SortOrder: 2},
				{VariantType: constants.VariantTypeSize, Name: "Medium", Value: "m", InStock: true, SortOrder: 1},
				{VariantType: constants.VariantTypeSize, Name: "Large", Value: "l", InStock: true, SortOrder: 2},
			},
		},
		{
			Slug:        "sentinel-ballistic-helmet",
			Name:        "Sentinel High-Cut Ballistic Helmet",
			Description: "NIJ IIIA high-cut helmet with Wendy-style liner and NVG shroud.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(589.00)),
			CategoryID:  categoryIDs["helmets"],
			InStock:     true,
			Rating:      4.9,
			ReviewCount: 64,
			Featured:    true,
			NewArrival:  true,
			SortOrder:   2,
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=800", Alt: "Sentinel helmet side", SortOrder: 1},
			},
			Variants: []models.ProductVariant{
				{VariantType: constants.VariantTypeColor, Name: "Black", Value: "black", InStock: true, SortOrder: 1},
				{VariantType: constants.VariantTypeSize, Name: "M/L", Value: "m-l", InStock: true, SortOrder: 1},
			},
		},
		{
			Slug:        "ranger-combat-shirt",
			Name:        "Ranger Combat Shirt",
			Description: "Flame-resistant combat shirt with reinforced elbows and zip collar.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(89.99)),
			CategoryID:  categoryIDs["apparel"],
			InStock:     true,
			Rating:      4.6,
			ReviewCount: 203,
			BestSeller:  true,
			SortOrder:   3,
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800", Alt: "Ranger combat shirt", SortOrder: 1},
			},
			Variants: []models.ProductVariant{
				{VariantType: constants.VariantTypeColor, Name: "Multicam", Value: "multicam", InStock: true, SortOrder: 1},
				{VariantType: constants.VariantTypeSize, Name: "Small", Value: "s", InStock: true, SortOrder: 1},
				{VariantType: constants.VariantTypeSize, Name: "Medium", Value: "m", InStock: true, SortOrder: 2},
				{VariantType: constants.VariantTypeSize, Name: "Large", Value: "l", InStock: true, SortOrder: 3},
			},
		},
		{
			Slug:        "vortex-red-dot",
			Name:        "Vortex-Style 2 MOA Red Dot",
			Description: "Shake-awake 2 MOA red dot with 50k hour battery life and lower 1/3 co-witness mount.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
			CategoryID:  categoryIDs["optics"],
			InStock:     true,
			Rating:      4.7,
			ReviewCount: 95,
			NewArrival:  true,
			SortOrder:   4,
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1584467735871-8e85353a8413?w=800", Alt: "Red dot sight", SortOrder: 1},
			},
		},
	}

	productIDs := map[string]uint{}
	for _, product := range products {
		existing, err := productRepo.GetBySlug(product.Slug)
		if err != nil {
			stdLog.Printf("Failed to look up product %s: %v", product.Slug, err)
			continue
		}
		if existing != nil {
			stdLog.Printf("Product already exists: %s", product.Slug)
			productIDs[product.Slug] = existing.ID
			continue
		}
		if err := productRepo.Create(&product); err != nil {
			stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			continue
		}
		productIDs[product.Slug] = product.ID
		stdLog.Printf("Created product: %s", product.Slug)
	}

	// 初始化库存台账：记录从 0 建账，初始数量走一笔 receive 流水
	threshold := 5
	type seedInventory struct {
		storeSlug   string
		productSlug string
		quantity    int
		sku         string
	}
	seedRecords := []seedInventory{
		{storeSlug: "nashville-hq", productSlug: "raptor-plate-carrier", quantity: 25, sku: "PC-RPT-NSH"},
		{storeSlug: "phoenix-outpost", productSlug: "raptor-plate-carrier", quantity: 12, sku: "PC-RPT-PHX"},
		{storeSlug: "nashville-hq", productSlug: "sentinel-ballistic-helmet", quantity: 8, sku: "HL-SNT-NSH"},
		{storeSlug: "nashville-hq", productSlug: "ranger-combat-shirt", quantity: 40, sku: "AP-RGR-NSH"},
		{storeSlug: "phoenix-outpost", productSlug: "ranger-combat-shirt", quantity: 16, sku: "AP-RGR-PHX"},
		{storeSlug: "phoenix-outpost", productSlug: "vortex-red-dot", quantity: 3, sku: "OP-VRD-PHX"},
	}

	for _, seed := range seedRecords {
		storeID := storeIDs[seed.storeSlug]
		productID := productIDs[seed.productSlug]
		if storeID == 0 || productID == 0 {
			stdLog.Printf("Skipping inventory seed %s @ %s: store or product missing", seed.productSlug, seed.storeSlug)
			continue
		}

		existing, err := inventoryService.Query(repository.InventoryFilter{
			StoreID:   &storeID,
			ProductID: &productID,
		})
		if err != nil {
			stdLog.Printf("Failed to look up inventory for %s: %v", seed.productSlug, err)
			continue
		}
		if len(existing) > 0 {
			stdLog.Printf("Inventory already exists: %s @ %s", seed.productSlug, seed.storeSlug)
			continue
		}

		record, err := inventoryService.CreateRecord(service.CreateInventoryRecordInput{
			StoreID:           storeID,
			ProductID:         productID,
			LowStockThreshold: &threshold,
			SKU:               seed.sku,
		})
		if err != nil {
			stdLog.Printf("Failed to create inventory for %s: %v", seed.productSlug, err)
			continue
		}
		if _, err := inventoryService.ApplyTransaction(service.ApplyTransactionInput{
			InventoryID:     record.ID,
			TransactionType: constants.TransactionTypeReceive,
			Quantity:        seed.quantity,
			Notes:           "initial stock",
			ReferenceNumber: "SEED-" + seed.sku,
		}); err != nil {
			stdLog.Printf("Failed to create initial transaction for %s: %v", seed.productSlug, err)
			continue
		}
		stdLog.Printf("Created inventory: %s @ %s qty=%d", seed.productSlug, seed.storeSlug, seed.quantity)
	}

	stdLog.Printf("Seed completed")
}
