package models

import "time"

// Comment 评论表
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	Text      string    `gorm:"type:text;not null" json:"text"`  // 评论内容
	PostID    uint      `gorm:"not null;index" json:"post_id"`   // 所属文章
	AuthorID  uint      `gorm:"not null;index" json:"author_id"` // 评论作者
	CreatedAt time.Time `gorm:"index" json:"created_at"`         // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                      // 更新时间

	Post   Post `gorm:"constraint:OnDelete:CASCADE" json:"-"`      // 文章信息
	Author User `gorm:"constraint:OnDelete:CASCADE" json:"author"` // 作者信息
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
