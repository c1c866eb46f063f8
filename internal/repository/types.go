package repository

// ProductListFilter 商品列表筛选条件
type ProductListFilter struct {
	CategoryID string // 按分类筛选（空表示全部）
	Search     string // 名称/描述模糊搜索
	Featured   *bool  // 精选
	NewArrival *bool  // 新品
	BestSeller *bool  // 热销
	InStock    *bool  // 有货
	Limit      int    // 返回条数上限（<=0 表示不限制）
}

// InventoryFilter 库存台账筛选条件
type InventoryFilter struct {
	StoreID   *uint // 按门店
	ProductID *uint // 按商品
	VariantID *uint // 按规格
	LowStock  bool  // 仅低库存（quantity <= low_stock_threshold，且阈值非空）
}

// CartOwner 购物车/心愿单归属标识（userID 与 sessionID 二选一）
type CartOwner struct {
	UserID    *uint
	SessionID *string
}

// Valid 校验归属标识是否恰好设置了一个
func (o CartOwner) Valid() bool {
	hasUser := o.UserID != nil && *o.UserID > 0
	hasSession := o.SessionID != nil && *o.SessionID != ""
	return hasUser != hasSession
}
