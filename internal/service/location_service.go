package service

import (
	"strings"

	"github.com/blogium-next/internal/models"
	"github.com/blogium-next/internal/repository"
)

// LocationService 地点业务服务
type LocationService struct {
	repo repository.LocationRepository
}

// NewLocationService 创建地点服务
func NewLocationService(repo repository.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// LocationInput 创建/更新地点输入
type LocationInput struct {
	Name        string
	IsPublished *bool
}

// ListPublic 公开地点列表
func (s *LocationService) ListPublic() ([]models.Location, error) {
	locations, _, err := s.repo.List(repository.LocationListFilter{OnlyPublished: true})
	return locations, err
}

// ListAdmin 后台地点列表
func (s *LocationService) ListAdmin(search string, page, pageSize int) ([]models.Location, int64, error) {
	return s.repo.List(repository.LocationListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	})
}

// Get 根据 ID 获取地点
func (s *LocationService) Get(id uint) (*models.Location, error) {
	location, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}
	return location, nil
}

// Create 创建地点
func (s *LocationService) Create(input LocationInput) (*models.Location, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	isPublished := true
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	location := models.Location{
		Name:        name,
		IsPublished: isPublished,
	}
	if err := s.repo.Create(&location); err != nil {
		return nil, err
	}
	return &location, nil
}

// Update 更新地点
func (s *LocationService) Update(id uint, input LocationInput) (*models.Location, error) {
	location, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		location.Name = name
	}
	if input.IsPublished != nil {
		location.IsPublished = *input.IsPublished
	}

	if err := s.repo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// Delete 删除地点，关联文章退回无地点状态
func (s *LocationService) Delete(id uint) error {
	location, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
