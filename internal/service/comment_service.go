package service

import (
	"strings"

	"github.com/blogium-next/internal/logger"
	"github.com/blogium-next/internal/models"
	"github.com/blogium-next/internal/queue"
	"github.com/blogium-next/internal/repository"
)

// CommentService 评论业务服务
type CommentService struct {
	commentRepo repository.CommentRepository
	postService *PostService
	queueClient *queue.Client
	notify      bool
}

// NewCommentService 创建评论服务
func NewCommentService(commentRepo repository.CommentRepository, postService *PostService, queueClient *queue.Client, notify bool) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postService: postService,
		queueClient: queueClient,
		notify:      notify,
	}
}

// ListForPost 文章评论列表，文章可见性沿用详情页规则
func (s *CommentService) ListForPost(postID uint, viewerID uint) ([]models.Comment, error) {
	if _, err := s.postService.Get(postID, viewerID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}

// Create 发表评论
func (s *CommentService) Create(postID uint, authorID uint, text string) (*models.Comment, error) {
	post, err := s.postService.Get(postID, authorID)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrInvalidInput
	}

	comment := models.Comment{
		Text:     trimmed,
		PostID:   post.ID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		return nil, err
	}

	// 通知文章作者有新评论，自己评论自己不发
	if s.notify && post.AuthorID != authorID {
		err := s.queueClient.EnqueueCommentNotify(queue.CommentNotifyPayload{
			CommentID: comment.ID,
			PostID:    post.ID,
		})
		if err != nil {
			logger.Warnw("comment_notify_enqueue_failed", "comment_id", comment.ID, "error", err)
		}
	}

	return s.commentRepo.GetByID(comment.ID)
}

// Update 修改评论，仅评论作者本人可改
func (s *CommentService) Update(commentID, postID, editorID uint, text string) (*models.Comment, error) {
	comment, err := s.getInPost(commentID, postID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != editorID {
		return nil, ErrForbidden
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrInvalidInput
	}

	comment.Text = trimmed
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(comment.ID)
}

// Delete 删除评论，仅评论作者本人可删
func (s *CommentService) Delete(commentID, postID, editorID uint) error {
	comment, err := s.getInPost(commentID, postID)
	if err != nil {
		return err
	}
	if comment.AuthorID != editorID {
		return ErrForbidden
	}
	return s.commentRepo.Delete(comment.ID)
}

// getInPost 获取评论并校验从属文章
func (s *CommentService) getInPost(commentID, postID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	if comment.PostID != postID {
		return nil, ErrCommentNotInPost
	}
	return comment, nil
}
