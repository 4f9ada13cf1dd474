package repository

import "time"

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Page         int
	PageSize     int
	CategorySlug string
	CategoryID   uint
	LocationID   uint
	AuthorID     uint
	Search       string
	IsPublished  *bool
	OnlyVisible  bool // 仅公开可见：已发布、发布时间已到、分类已发布
	OrderBy      string
}

// CommentListFilter 查询评论列表的过滤条件
type CommentListFilter struct {
	Page     int
	PageSize int
	PostID   uint
	AuthorID uint
	Search   string
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page          int
	PageSize      int
	Search        string
	OnlyPublished bool
}

// LocationListFilter 查询地点列表的过滤条件
type LocationListFilter struct {
	Page          int
	PageSize      int
	Search        string
	OnlyPublished bool
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
