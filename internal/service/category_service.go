package service

import (
	"strings"

	"github.com/blogium-next/internal/models"
	"github.com/blogium-next/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Slug        string
	Title       string
	Description string
	IsPublished *bool
}

// ListPublic 公开分类列表
func (s *CategoryService) ListPublic() ([]models.Category, error) {
	categories, _, err := s.repo.List(repository.CategoryListFilter{OnlyPublished: true})
	return categories, err
}

// ListAdmin 后台分类列表
func (s *CategoryService) ListAdmin(search string, page, pageSize int) ([]models.Category, int64, error) {
	return s.repo.List(repository.CategoryListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	})
}

// Get 根据 ID 获取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	slug := strings.TrimSpace(input.Slug)
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	isPublished := true
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	category := models.Category{
		Slug:        slug,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		IsPublished: isPublished,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category.Slug = slug
	category.Title = strings.TrimSpace(input.Title)
	category.Description = input.Description
	if input.IsPublished != nil {
		category.IsPublished = *input.IsPublished
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类，关联文章退回无分类状态
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
