package service

import (
	"errors"
	"testing"
	"time"
)

func TestCommentServiceCreate_GatedByPostVisibility(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	commenter := f.createUser(t, "commenter")
	category := f.createCategory(t, "life", true)
	hidden := f.createPost(t, author.ID, &category.ID, false, time.Now().Add(-time.Hour))

	if _, err := f.commentService.Create(hidden.ID, commenter.ID, "hi"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on hidden post, got %v", err)
	}
	// 作者本人可以评论自己尚未公开的文章
	if _, err := f.commentService.Create(hidden.ID, author.ID, "note to self"); err != nil {
		t.Fatalf("author comment on own hidden post failed: %v", err)
	}
}

func TestCommentServiceCreate_RejectsEmptyText(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	category := f.createCategory(t, "life", true)
	post := f.createPost(t, author.ID, &category.ID, true, time.Now().Add(-time.Hour))

	if _, err := f.commentService.Create(post.ID, author.ID, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCommentServiceCreate_TrimsAndPreloadsAuthor(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	commenter := f.createUser(t, "commenter")
	category := f.createCategory(t, "life", true)
	post := f.createPost(t, author.ID, &category.ID, true, time.Now().Add(-time.Hour))

	comment, err := f.commentService.Create(post.ID, commenter.ID, "  nice read  ")
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if comment.Text != "nice read" {
		t.Fatalf("expected trimmed text, got %q", comment.Text)
	}
	if comment.Author.Username != "commenter" {
		t.Fatalf("expected author preloaded, got %q", comment.Author.Username)
	}
}

func TestCommentServiceUpdate_PostMismatchAndForbidden(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	commenter := f.createUser(t, "commenter")
	category := f.createCategory(t, "life", true)
	first := f.createPost(t, author.ID, &category.ID, true, time.Now().Add(-time.Hour))
	second := f.createPost(t, author.ID, &category.ID, true, time.Now().Add(-time.Hour))

	comment, err := f.commentService.Create(first.ID, commenter.ID, "hello")
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if _, err := f.commentService.Update(comment.ID, second.ID, commenter.ID, "edited"); !errors.Is(err, ErrCommentNotInPost) {
		t.Fatalf("expected ErrCommentNotInPost, got %v", err)
	}
	if _, err := f.commentService.Update(comment.ID, first.ID, author.ID, "edited"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := f.commentService.Update(comment.ID, first.ID, commenter.ID, "edited")
	if err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if updated.Text != "edited" {
		t.Fatalf("expected edited text, got %q", updated.Text)
	}
}

func TestCommentServiceDelete_OnlyCommentAuthor(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	commenter := f.createUser(t, "commenter")
	category := f.createCategory(t, "life", true)
	post := f.createPost(t, author.ID, &category.ID, true, time.Now().Add(-time.Hour))

	comment, err := f.commentService.Create(post.ID, commenter.ID, "hello")
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if err := f.commentService.Delete(comment.ID, post.ID, author.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for post author, got %v", err)
	}
	if err := f.commentService.Delete(comment.ID, post.ID, commenter.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := f.commentService.Delete(comment.ID, post.ID, commenter.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCommentServiceList_GatedByPostVisibility(t *testing.T) {
	f := newBlogServiceFixture(t)
	author := f.createUser(t, "author")
	stranger := f.createUser(t, "stranger")
	category := f.createCategory(t, "life", true)
	hidden := f.createPost(t, author.ID, &category.ID, true, time.Now().Add(time.Hour))

	if _, err := f.commentService.ListForPost(hidden.ID, stranger.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for scheduled post, got %v", err)
	}
	if _, err := f.commentService.ListForPost(hidden.ID, author.ID); err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
}
