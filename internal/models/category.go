package models

import "time"

// Category 分类表
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`       // 唯一标识，用于分类页地址
	Title       string    `gorm:"not null" json:"title"`                  // 分类名称
	Description string    `gorm:"type:text" json:"description"`           // 分类描述
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布，下线后该分类下文章不再公开
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
