package service

import (
	"strings"
	"time"

	"github.com/blogium-next/internal/models"
	"github.com/blogium-next/internal/repository"
)

// PostService 文章业务服务
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	now          func() time.Time
}

// NewPostService 创建文章服务
func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository, locationRepo repository.LocationRepository) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		now:          time.Now,
	}
}

// PostInput 创建/更新文章输入
type PostInput struct {
	Title       string
	Text        string
	PubDate     *time.Time
	CategoryID  *uint
	LocationID  *uint
	Image       string
	IsPublished *bool
}

// ListFeed 首页文章列表，仅公开可见内容
func (s *PostService) ListFeed(page, pageSize int) ([]models.Post, int64, error) {
	return s.postRepo.List(repository.PostListFilter{
		Page:        page,
		PageSize:    pageSize,
		OnlyVisible: true,
	})
}

// ListByCategory 分类页文章列表，分类必须存在且已发布
func (s *PostService) ListByCategory(slug string, page, pageSize int) (*models.Category, []models.Post, int64, error) {
	category, err := s.categoryRepo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, nil, 0, err
	}
	if category == nil {
		return nil, nil, 0, ErrNotFound
	}

	posts, total, err := s.postRepo.List(repository.PostListFilter{
		Page:         page,
		PageSize:     pageSize,
		OnlyVisible:  true,
		CategorySlug: category.Slug,
	})
	if err != nil {
		return nil, nil, 0, err
	}
	return category, posts, total, nil
}

// ListByAuthor 个人主页文章列表，本人访问时不过滤可见性
func (s *PostService) ListByAuthor(author *models.User, viewerID uint, page, pageSize int) ([]models.Post, int64, error) {
	if author == nil {
		return nil, 0, ErrNotFound
	}
	return s.postRepo.List(repository.PostListFilter{
		Page:        page,
		PageSize:    pageSize,
		AuthorID:    author.ID,
		OnlyVisible: viewerID != author.ID,
	})
}

// Get 文章详情，作者可以看到自己未公开的文章
func (s *PostService) Get(id uint, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.AuthorID != viewerID && !s.isVisible(post) {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章
func (s *PostService) Create(authorID uint, input PostInput) (*models.Post, error) {
	if err := s.validateRefs(input); err != nil {
		return nil, err
	}

	pubDate := s.now()
	if input.PubDate != nil {
		pubDate = *input.PubDate
	}
	isPublished := true
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	post := models.Post{
		Title:       strings.TrimSpace(input.Title),
		Text:        input.Text,
		PubDate:     pubDate,
		AuthorID:    authorID,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
		Image:       strings.TrimSpace(input.Image),
		IsPublished: isPublished,
	}

	if err := s.postRepo.Create(&post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(post.ID)
}

// Update 更新文章，仅作者本人可改
func (s *PostService) Update(id uint, editorID uint, input PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.AuthorID != editorID {
		return nil, ErrForbidden
	}
	if err := s.validateRefs(input); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Text = input.Text
	if input.PubDate != nil {
		post.PubDate = *input.PubDate
	}
	post.CategoryID = input.CategoryID
	post.LocationID = input.LocationID
	if trimmed := strings.TrimSpace(input.Image); trimmed != "" {
		post.Image = trimmed
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(post.ID)
}

// Delete 删除文章，仅作者本人可删
func (s *PostService) Delete(id uint, editorID uint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.AuthorID != editorID {
		return ErrForbidden
	}
	return s.postRepo.Delete(id)
}

// isVisible 判断文章对公众是否可见
func (s *PostService) isVisible(post *models.Post) bool {
	if post == nil || !post.IsPublished {
		return false
	}
	if post.PubDate.After(s.now()) {
		return false
	}
	// 未挂分类或分类未发布的文章不对外展示
	return post.Category != nil && post.Category.IsPublished
}

func (s *PostService) validateRefs(input PostInput) error {
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrNotFound
		}
	}
	if input.LocationID != nil {
		location, err := s.locationRepo.GetByID(*input.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return ErrNotFound
		}
	}
	return nil
}
