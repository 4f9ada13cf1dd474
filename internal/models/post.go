package models

import "time"

// Post 文章表
type Post struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Title       string    `gorm:"not null" json:"title"`                  // 标题
	Text        string    `gorm:"type:text;not null" json:"text"`         // 正文
	PubDate     time.Time `gorm:"not null;index" json:"pub_date"`         // 发布时间，晚于当前时间表示定时发布
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`        // 作者
	CategoryID  *uint     `gorm:"index" json:"category_id"`               // 所属分类，可为空
	LocationID  *uint     `gorm:"index" json:"location_id"`               // 关联地点，可为空
	Image       string    `gorm:"type:varchar(500)" json:"image"`         // 配图路径
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布，下线后仅作者可见
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                             // 更新时间

	Author   User      `gorm:"constraint:OnDelete:CASCADE" json:"author"`    // 作者信息
	Category *Category `gorm:"constraint:OnDelete:SET NULL" json:"category"` // 分类信息
	Location *Location `gorm:"constraint:OnDelete:SET NULL" json:"location"` // 地点信息

	// 评论数由列表查询的子查询填充，不落库
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}
