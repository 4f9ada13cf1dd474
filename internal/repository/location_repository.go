package repository

import (
	"errors"
	"strings"

	"github.com/blogium-next/internal/models"

	"gorm.io/gorm"
)

// LocationRepository 地点数据访问接口
type LocationRepository interface {
	List(filter LocationListFilter) ([]models.Location, int64, error)
	GetByID(id uint) (*models.Location, error)
	Create(location *models.Location) error
	Update(location *models.Location) error
	Delete(id uint) error
	CountPosts(locationID uint) (int64, error)
}

// GormLocationRepository GORM 实现
type GormLocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository 创建地点仓库
func NewLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// List 地点列表
func (r *GormLocationRepository) List(filter LocationListFilter) ([]models.Location, int64, error) {
	query := r.db.Model(&models.Location{})

	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildLikeCondition(r.db, []string{"name"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := ClampPage(filter.Page, total, filter.PageSize)
	query = applyPagination(query, page, filter.PageSize)

	locations := make([]models.Location, 0)
	if err := query.Order("id ASC").Find(&locations).Error; err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

// GetByID 根据 ID 获取地点
func (r *GormLocationRepository) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

// Create 创建地点
func (r *GormLocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// Update 更新地点
func (r *GormLocationRepository) Update(location *models.Location) error {
	return r.db.Save(location).Error
}

// Delete 删除地点，关联文章的 location_id 由外键置空
func (r *GormLocationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Location{}, id).Error
}

// CountPosts 统计地点下文章数量
func (r *GormLocationRepository) CountPosts(locationID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("location_id = ?", locationID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
