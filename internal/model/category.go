package model

import (
	"github.com/learncodes/mynote-sync/pkg/timex"
)

// Category 分类数据库模型
type Category struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name 名称，唯一且区分大小写
	Name string `gorm:"column:name;uniqueIndex"`
	// Color RGBA 颜色值
	Color     int64      `gorm:"column:color"`
	CreatedAt timex.Time `gorm:"column:created_at"`
}
