package models

import (
	"time"

	"gorm.io/gorm"
)

// StoreLocation 门店/仓库表
type StoreLocation struct {
	ID         uint           `gorm:"primarykey" json:"id"`                   // 主键
	Slug       string         `gorm:"uniqueIndex;not null" json:"slug"`       // 唯一标识
	Name       string         `gorm:"type:varchar(200);not null" json:"name"` // 门店名称
	Address    string         `gorm:"type:varchar(300)" json:"address"`       // 街道地址
	City       string         `gorm:"type:varchar(100)" json:"city"`          // 城市
	Region     string         `gorm:"type:varchar(100)" json:"region"`        // 省/州
	PostalCode string         `gorm:"type:varchar(20)" json:"postal_code"`    // 邮编
	Country    string         `gorm:"type:varchar(100)" json:"country"`       // 国家
	Phone      string         `gorm:"type:varchar(50)" json:"phone"`          // 联系电话
	Latitude   *float64       `json:"latitude"`                               // 纬度（可空）
	Longitude  *float64       `json:"longitude"`                              // 经度（可空）
	IsActive   bool           `gorm:"default:true;index" json:"is_active"`    // 是否营业
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                // 创建时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间
}

// TableName 指定表名
func (StoreLocation) TableName() string {
	return "store_locations"
}
