package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blogium-next/internal/config"
	"github.com/blogium-next/internal/models"
	"github.com/blogium-next/internal/queue"
	"github.com/blogium-next/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type blogServiceFixture struct {
	db             *gorm.DB
	postService    *PostService
	commentService *CommentService
	categoryRepo   repository.CategoryRepository
	commentRepo    repository.CommentRepository
}

func newBlogServiceFixture(t *testing.T) *blogServiceFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Location{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	postService := NewPostService(postRepo, categoryRepo, locationRepo)
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	commentService := NewCommentService(commentRepo, postService, queueClient, false)

	return &blogServiceFixture{
		db:             db,
		postService:    postService,
		commentService: commentService,
		categoryRepo:   categoryRepo,
		commentRepo:    commentRepo,
	}
}

func (f *blogServiceFixture) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	if err := f.db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return &user
}

func (f *blogServiceFixture) createCategory(t *testing.T, slug string, published bool) *models.Category {
	t.Helper()
	category := models.Category{
		Slug:        slug,
		Title:       slug,
		IsPublished: published,
	}
	if err := f.db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return &category
}

func (f *blogServiceFixture) createPost(t *testing.T, authorID uint, categoryID *uint, published bool, pubDate time.Time) *models.Post {
	t.Helper()
	post := models.Post{
		Title:       "post",
		Text:        "text",
		PubDate:     pubDate,
		AuthorID:    authorID,
		CategoryID:  categoryID,
		IsPublished: published,
	}
	if err := f.db.Create(&post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return &post
}

func TestPostServiceGet_OwnerSeesHiddenPost(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	category := f.createCategory(t, "life", true)
	hidden := f.createPost(t, author.ID, &category.ID, false, time.Now().Add(-time.Hour))

	got, err := f.postService.Get(hidden.ID, author.ID)
	if err != nil {
		t.Fatalf("owner get hidden post failed: %v", err)
	}
	if got.ID != hidden.ID {
		t.Fatalf("expected post id=%d, got id=%d", hidden.ID, got.ID)
	}
}

func TestPostServiceGet_StrangerCannotSeeHiddenPost(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	stranger := f.createUser(t, "stranger")
	category := f.createCategory(t, "life", true)

	cases := []struct {
		name string
		post *models.Post
	}{
		{"unpublished", f.createPost(t, author.ID, &category.ID, false, time.Now().Add(-time.Hour))},
		{"scheduled", f.createPost(t, author.ID, &category.ID, true, time.Now().Add(time.Hour))},
		{"no_category", f.createPost(t, author.ID, nil, true, time.Now().Add(-time.Hour))},
	}
	for _, tc := range cases {
		if _, err := f.postService.Get(tc.post.ID, stranger.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", tc.name, err)
		}
	}
}

func TestPostServiceGet_HiddenCategoryBlocksEveryoneButOwner(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	stranger := f.createUser(t, "stranger")
	hiddenCategory := f.createCategory(t, "drafts", false)
	post := f.createPost(t, author.ID, &hiddenCategory.ID, true, time.Now().Add(-time.Hour))

	if _, err := f.postService.Get(post.ID, stranger.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger, got %v", err)
	}
	if _, err := f.postService.Get(post.ID, author.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
}

func TestPostServiceListByAuthor_OwnerSeesAllStrangerSeesVisible(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	stranger := f.createUser(t, "stranger")
	category := f.createCategory(t, "life", true)
	f.createPost(t, author.ID, &category.ID, true, time.Now().Add(-time.Hour))
	f.createPost(t, author.ID, &category.ID, false, time.Now().Add(-time.Hour))
	f.createPost(t, author.ID, &category.ID, true, time.Now().Add(time.Hour))

	_, total, err := f.postService.ListByAuthor(author, author.ID, 1, 10)
	if err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected owner to see 3 posts, got %d", total)
	}

	_, total, err = f.postService.ListByAuthor(author, stranger.ID, 1, 10)
	if err != nil {
		t.Fatalf("stranger list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected stranger to see 1 post, got %d", total)
	}
}

func TestPostServiceListByCategory_UnpublishedCategoryNotFound(t *testing.T) {
	f := newBlogServiceFixture(t)
	f.createCategory(t, "drafts", false)

	if _, _, _, err := f.postService.ListByCategory("drafts", 1, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, _, _, err := f.postService.ListByCategory("missing", 1, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing slug, got %v", err)
	}
}

func TestPostServiceCreate_DefaultsAndRefChecks(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	category := f.createCategory(t, "life", true)

	post, err := f.postService.Create(author.ID, PostInput{
		Title:      "  hello  ",
		Text:       "body",
		CategoryID: &category.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Title != "hello" {
		t.Fatalf("expected trimmed title, got %q", post.Title)
	}
	if !post.IsPublished {
		t.Fatalf("expected post published by default")
	}
	if post.PubDate.IsZero() {
		t.Fatalf("expected pub date default to now")
	}
	if post.Category == nil || post.Category.Slug != "life" {
		t.Fatalf("expected category preloaded")
	}

	missing := uint(9999)
	if _, err := f.postService.Create(author.ID, PostInput{Title: "x", Text: "y", CategoryID: &missing}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing category, got %v", err)
	}
	if _, err := f.postService.Create(author.ID, PostInput{Title: "x", Text: "y", LocationID: &missing}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing location, got %v", err)
	}
}

func TestPostServiceUpdate_OnlyAuthor(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	stranger := f.createUser(t, "stranger")
	category := f.createCategory(t, "life", true)
	post := f.createPost(t, author.ID, &category.ID, true, time.Now().Add(-time.Hour))

	if _, err := f.postService.Update(post.ID, stranger.ID, PostInput{Title: "hijacked", Text: "x"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	hidden := false
	updated, err := f.postService.Update(post.ID, author.ID, PostInput{
		Title:       "renamed",
		Text:        "new body",
		CategoryID:  &category.ID,
		IsPublished: &hidden,
	})
	if err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if updated.Title != "renamed" || updated.IsPublished {
		t.Fatalf("update not applied: title=%q published=%v", updated.Title, updated.IsPublished)
	}
}

func TestPostServiceDelete_OnlyAuthor(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	stranger := f.createUser(t, "stranger")
	category := f.createCategory(t, "life", true)
	post := f.createPost(t, author.ID, &category.ID, true, time.Now().Add(-time.Hour))

	if err := f.postService.Delete(post.ID, stranger.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := f.postService.Delete(post.ID, author.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if err := f.postService.Delete(post.ID, author.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
