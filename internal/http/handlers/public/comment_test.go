package public

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blogium-next/internal/config"
	"github.com/blogium-next/internal/models"
	"github.com/blogium-next/internal/provider"
	"github.com/blogium-next/internal/queue"
	"github.com/blogium-next/internal/repository"
	"github.com/blogium-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type commentHandlerFixture struct {
	db      *gorm.DB
	handler *Handler
}

func newCommentHandlerFixture(t *testing.T) *commentHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Location{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	postService := service.NewPostService(
		repository.NewPostRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewLocationRepository(db),
	)
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	commentService := service.NewCommentService(repository.NewCommentRepository(db), postService, queueClient, false)

	return &commentHandlerFixture{
		db:      db,
		handler: New(&provider.Container{CommentService: commentService}),
	}
}

// newCommentRouter 以固定登录用户挂载评论编辑路由
func (f *commentHandlerFixture) newCommentRouter(uid uint) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uid)
		c.Next()
	})
	r.PUT("/api/v1/posts/:id/comments/:comment_id", f.handler.UpdateComment)
	r.DELETE("/api/v1/posts/:id/comments/:comment_id", f.handler.DeleteComment)
	return r
}

func (f *commentHandlerFixture) seedPostWithComment(t *testing.T) (*models.User, *models.User, *models.Post, *models.Comment) {
	t.Helper()
	author := models.User{Username: "author", Email: "author@example.com", PasswordHash: "hash"}
	intruder := models.User{Username: "intruder", Email: "intruder@example.com", PasswordHash: "hash"}
	for _, u := range []*models.User{&author, &intruder} {
		if err := f.db.Create(u).Error; err != nil {
			t.Fatalf("create user failed: %v", err)
		}
	}

	category := models.Category{Slug: "life", Title: "life", IsPublished: true}
	if err := f.db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	post := models.Post{
		Title:       "post",
		Text:        "text",
		PubDate:     time.Now().Add(-time.Hour),
		AuthorID:    author.ID,
		CategoryID:  &category.ID,
		IsPublished: true,
	}
	if err := f.db.Create(&post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	comment := models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "original"}
	if err := f.db.Create(&comment).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	return &author, &intruder, &post, &comment
}

func TestUpdateCommentByNonAuthorRedirectsToPost(t *testing.T) {
	f := newCommentHandlerFixture(t)
	author, intruder, post, comment := f.seedPostWithComment(t)

	url := fmt.Sprintf("/api/v1/posts/%d/comments/%d", post.ID, comment.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, url, strings.NewReader(`{"text":"hijacked"}`))
	req.Header.Set("Content-Type", "application/json")
	f.newCommentRouter(intruder.ID).ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("non-author update status want 303 got %d", w.Code)
	}
	wantLocation := fmt.Sprintf("/api/v1/posts/%d", post.ID)
	if got := w.Header().Get("Location"); got != wantLocation {
		t.Fatalf("redirect location want %s got %s", wantLocation, got)
	}
	var stored models.Comment
	if err := f.db.First(&stored, comment.ID).Error; err != nil {
		t.Fatalf("reload comment failed: %v", err)
	}
	if stored.Text != "original" {
		t.Fatalf("comment text should be untouched, got %q", stored.Text)
	}

	// 作者本人正常编辑
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, url, strings.NewReader(`{"text":"edited"}`))
	req.Header.Set("Content-Type", "application/json")
	f.newCommentRouter(author.ID).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("author update status want 200 got %d", w.Code)
	}
}

func TestDeleteCommentByNonAuthorRedirectsToPost(t *testing.T) {
	f := newCommentHandlerFixture(t)
	_, intruder, post, comment := f.seedPostWithComment(t)

	url := fmt.Sprintf("/api/v1/posts/%d/comments/%d", post.ID, comment.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	f.newCommentRouter(intruder.ID).ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("non-author delete status want 303 got %d", w.Code)
	}
	wantLocation := fmt.Sprintf("/api/v1/posts/%d", post.ID)
	if got := w.Header().Get("Location"); got != wantLocation {
		t.Fatalf("redirect location want %s got %s", wantLocation, got)
	}
	var count int64
	if err := f.db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error; err != nil {
		t.Fatalf("count comment failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("comment should survive non-author delete, count %d", count)
	}
}
