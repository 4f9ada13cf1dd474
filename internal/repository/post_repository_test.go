package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blogium-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// 每个测试用独立的命名内存库，开启外键以验证级联行为
func setupBlogRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Category{}, &models.Location{}, &models.Post{}, &models.Comment{})
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func newTestPostRepository(db *gorm.DB) *GormPostRepository {
	repo := NewPostRepository(db)
	repo.now = func() time.Time { return testNow }
	return repo
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{
		Slug:        slug,
		Title:       "分类 " + slug,
		IsPublished: published,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestPost(t *testing.T, db *gorm.DB, title string, authorID uint, categoryID *uint, pubDate time.Time, published bool) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       title,
		Text:        "正文",
		PubDate:     pubDate,
		AuthorID:    authorID,
		CategoryID:  categoryID,
		IsPublished: published,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, postID, authorID uint, text string) *models.Comment {
	t.Helper()
	comment := &models.Comment{Text: text, PostID: postID, AuthorID: authorID}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	return comment
}

func TestPostListVisibleScope(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "alice")
	published := createTestCategory(t, db, "travel", true)
	hidden := createTestCategory(t, db, "drafts", false)

	visible := createTestPost(t, db, "visible", author.ID, &published.ID, testNow.Add(-time.Hour), true)
	createTestPost(t, db, "unpublished", author.ID, &published.ID, testNow.Add(-time.Hour), false)
	createTestPost(t, db, "scheduled", author.ID, &published.ID, testNow.Add(time.Hour), true)
	createTestPost(t, db, "hidden category", author.ID, &hidden.ID, testNow.Add(-time.Hour), true)
	createTestPost(t, db, "no category", author.ID, nil, testNow.Add(-time.Hour), true)

	posts, total, err := repo.List(PostListFilter{Page: 1, PageSize: 10, OnlyVisible: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if len(posts) != 1 || posts[0].ID != visible.ID {
		t.Fatalf("expected only the visible post, got %d rows", len(posts))
	}
	if posts[0].Author.Username != "alice" {
		t.Fatalf("expected preloaded author, got %q", posts[0].Author.Username)
	}
}

func TestPostListWithoutVisibleScopeReturnsAll(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "bob")
	category := createTestCategory(t, db, "life", true)

	createTestPost(t, db, "one", author.ID, &category.ID, testNow.Add(-time.Hour), true)
	createTestPost(t, db, "two", author.ID, nil, testNow.Add(time.Hour), false)

	_, total, err := repo.List(PostListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
}

func TestPostListOrderedByPubDateDesc(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "carol")
	category := createTestCategory(t, db, "tech", true)

	older := createTestPost(t, db, "older", author.ID, &category.ID, testNow.Add(-48*time.Hour), true)
	newer := createTestPost(t, db, "newer", author.ID, &category.ID, testNow.Add(-time.Hour), true)

	posts, _, err := repo.List(PostListFilter{Page: 1, PageSize: 10, OnlyVisible: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != newer.ID || posts[1].ID != older.ID {
		t.Fatalf("expected newest first, got [%d %d]", posts[0].ID, posts[1].ID)
	}
}

func TestPostListClampsPageBeyondLast(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "dave")
	category := createTestCategory(t, db, "news", true)

	for i := 0; i < 25; i++ {
		createTestPost(t, db, fmt.Sprintf("post %02d", i), author.ID, &category.ID, testNow.Add(-time.Duration(i+1)*time.Hour), true)
	}

	posts, total, err := repo.List(PostListFilter{Page: 99, PageSize: 10, OnlyVisible: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("total want 25 got %d", total)
	}
	if len(posts) != 5 {
		t.Fatalf("expected last page with 5 rows, got %d", len(posts))
	}
	if posts[0].Title != "post 20" {
		t.Fatalf("expected last page to start at post 20, got %q", posts[0].Title)
	}
}

func TestPostListCommentCount(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "erin")
	category := createTestCategory(t, db, "food", true)

	commented := createTestPost(t, db, "commented", author.ID, &category.ID, testNow.Add(-2*time.Hour), true)
	silent := createTestPost(t, db, "silent", author.ID, &category.ID, testNow.Add(-time.Hour), true)
	createTestComment(t, db, commented.ID, author.ID, "first")
	createTestComment(t, db, commented.ID, author.ID, "second")

	posts, _, err := repo.List(PostListFilter{Page: 1, PageSize: 10, OnlyVisible: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	counts := map[uint]int64{}
	for _, p := range posts {
		counts[p.ID] = p.CommentCount
	}
	if counts[commented.ID] != 2 {
		t.Fatalf("comment count want 2 got %d", counts[commented.ID])
	}
	if counts[silent.ID] != 0 {
		t.Fatalf("comment count want 0 got %d", counts[silent.ID])
	}
}

func TestPostListFilterByCategorySlugAndAuthor(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	alice := createTestUser(t, db, "frank")
	bob := createTestUser(t, db, "grace")
	travel := createTestCategory(t, db, "hiking", true)
	other := createTestCategory(t, db, "cooking", true)

	match := createTestPost(t, db, "match", alice.ID, &travel.ID, testNow.Add(-time.Hour), true)
	createTestPost(t, db, "wrong category", alice.ID, &other.ID, testNow.Add(-time.Hour), true)
	createTestPost(t, db, "wrong author", bob.ID, &travel.ID, testNow.Add(-time.Hour), true)

	posts, total, err := repo.List(PostListFilter{
		Page:         1,
		PageSize:     10,
		OnlyVisible:  true,
		CategorySlug: "hiking",
		AuthorID:     alice.ID,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].ID != match.ID {
		t.Fatalf("expected single match, got total=%d rows=%d", total, len(posts))
	}
}

func TestGetByIDLoadsAssociationsAndCommentCount(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "heidi")
	category := createTestCategory(t, db, "music", true)

	post := createTestPost(t, db, "with comments", author.ID, &category.ID, testNow.Add(-time.Hour), true)
	createTestComment(t, db, post.ID, author.ID, "nice")

	got, err := repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected post")
	}
	if got.Category == nil || got.Category.Slug != "music" {
		t.Fatal("expected preloaded category")
	}
	if got.CommentCount != 1 {
		t.Fatalf("comment count want 1 got %d", got.CommentCount)
	}

	missing, err := repo.GetByID(99999)
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing post")
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "ivan")
	category := createTestCategory(t, db, "sports", true)

	post := createTestPost(t, db, "doomed", author.ID, &category.ID, testNow.Add(-time.Hour), true)
	createTestComment(t, db, post.ID, author.ID, "gone soon")

	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var commentTotal int64
	if err := db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentTotal).Error; err != nil {
		t.Fatalf("count comments failed: %v", err)
	}
	if commentTotal != 0 {
		t.Fatalf("expected cascade delete, %d comments remain", commentTotal)
	}
}

func TestDeleteCategoryDetachesPosts(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "judy")
	category := createTestCategory(t, db, "doomed-cat", true)

	post := createTestPost(t, db, "orphan", author.ID, &category.ID, testNow.Add(-time.Hour), true)

	if err := db.Delete(&models.Category{}, category.ID).Error; err != nil {
		t.Fatalf("delete category failed: %v", err)
	}

	got, err := repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("post should survive category deletion")
	}
	if got.CategoryID != nil {
		t.Fatalf("expected category_id set null, got %v", *got.CategoryID)
	}
}

func TestCountByAuthor(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := newTestPostRepository(db)
	author := createTestUser(t, db, "kate")
	category := createTestCategory(t, db, "photos", true)

	createTestPost(t, db, "public", author.ID, &category.ID, testNow.Add(-time.Hour), true)
	createTestPost(t, db, "draft", author.ID, &category.ID, testNow.Add(-time.Hour), false)

	all, err := repo.CountByAuthor(author.ID, false)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if all != 2 {
		t.Fatalf("all count want 2 got %d", all)
	}

	visible, err := repo.CountByAuthor(author.ID, true)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if visible != 1 {
		t.Fatalf("visible count want 1 got %d", visible)
	}
}
