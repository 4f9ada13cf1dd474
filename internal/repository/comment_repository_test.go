package repository

import (
	"testing"
	"time"
)

func TestCommentListByPostOrderedAsc(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewCommentRepository(db)
	author := createTestUser(t, db, "laura")
	category := createTestCategory(t, db, "books", true)
	post := createTestPost(t, db, "discussed", author.ID, &category.ID, testNow.Add(-time.Hour), true)

	first := createTestComment(t, db, post.ID, author.ID, "first")
	second := createTestComment(t, db, post.ID, author.ID, "second")
	// 其他文章的评论不应出现
	other := createTestPost(t, db, "other", author.ID, &category.ID, testNow.Add(-time.Hour), true)
	createTestComment(t, db, other.ID, author.ID, "elsewhere")

	comments, err := repo.ListByPost(post.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].ID != first.ID || comments[1].ID != second.ID {
		t.Fatalf("expected chronological order, got [%d %d]", comments[0].ID, comments[1].ID)
	}
	if comments[0].Author.Username != "laura" {
		t.Fatal("expected preloaded comment author")
	}
}

func TestCommentGetByIDMissing(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewCommentRepository(db)

	comment, err := repo.GetByID(404)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if comment != nil {
		t.Fatal("expected nil for missing comment")
	}
}

func TestCommentCountByPost(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewCommentRepository(db)
	author := createTestUser(t, db, "mike")
	category := createTestCategory(t, db, "games", true)
	post := createTestPost(t, db, "counted", author.ID, &category.ID, testNow.Add(-time.Hour), true)

	createTestComment(t, db, post.ID, author.ID, "one")
	createTestComment(t, db, post.ID, author.ID, "two")

	count, err := repo.CountByPost(post.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("count want 2 got %d", count)
	}
}
