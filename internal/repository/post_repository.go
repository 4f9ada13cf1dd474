package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/blogium-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commentCountSelect 用子查询携带每篇文章的评论数
const commentCountSelect = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

// PostRepository 文章数据访问接口
type PostRepository interface {
	List(filter PostListFilter) ([]models.Post, int64, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) error
	CountByAuthor(authorID uint, onlyVisible bool) (int64, error)
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db, now: time.Now}
}

// scopeVisible 公开可见范围：已发布、发布时间已到、所属分类存在且已发布。
// 内联的分类条件使未挂分类的文章同样不可见。
func (r *GormPostRepository) scopeVisible(query *gorm.DB) *gorm.DB {
	return query.
		Joins("JOIN categories ON categories.id = posts.category_id AND categories.is_published = ?", true).
		Where("posts.is_published = ?", true).
		Where("posts.pub_date <= ?", r.now())
}

// List 文章列表，页码越界时收敛到最后一页
func (r *GormPostRepository) List(filter PostListFilter) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{})

	if filter.OnlyVisible {
		query = r.scopeVisible(query)
	} else if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = posts.category_id")
	}
	if filter.CategorySlug != "" {
		query = query.Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.CategoryID > 0 {
		query = query.Where("posts.category_id = ?", filter.CategoryID)
	}
	if filter.LocationID > 0 {
		query = query.Where("posts.location_id = ?", filter.LocationID)
	}
	if filter.AuthorID > 0 {
		query = query.Where("posts.author_id = ?", filter.AuthorID)
	}
	if filter.IsPublished != nil {
		query = query.Where("posts.is_published = ?", *filter.IsPublished)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildLikeCondition(r.db, []string{"posts.title", "posts.text"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := ClampPage(filter.Page, total, filter.PageSize)
	query = applyPagination(query, page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "posts.pub_date DESC"
	}

	var posts []models.Post
	err := query.
		Select(commentCountSelect).
		Order(orderBy).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetByID 根据 ID 获取文章，可见性判断留给上层
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Model(&models.Post{}).
		Select(commentCountSelect).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create 创建文章
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Omit(clause.Associations).Create(post).Error
}

// Update 更新文章
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

// Delete 删除文章，关联评论由外键级联删除
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// CountByAuthor 统计作者文章数量
func (r *GormPostRepository) CountByAuthor(authorID uint, onlyVisible bool) (int64, error) {
	query := r.db.Model(&models.Post{}).Where("posts.author_id = ?", authorID)
	if onlyVisible {
		query = r.scopeVisible(query)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
