package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/blogium-next/internal/logger"
	"github.com/blogium-next/internal/provider"
	"github.com/blogium-next/internal/queue"
	"github.com/blogium-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCommentNotify, c.handleCommentNotify)
}

func (c *Consumer) handleCommentNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_comment_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CommentNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_comment_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.CommentID == 0 || payload.PostID == 0 {
		logger.Debugw("worker_comment_notify_skip_invalid_payload", "comment_id", payload.CommentID, "post_id", payload.PostID)
		return nil
	}
	comment, err := c.CommentRepo.GetByID(payload.CommentID)
	if err != nil {
		logger.Warnw("worker_comment_notify_fetch_comment_failed", "comment_id", payload.CommentID, "error", err)
		return err
	}
	if comment == nil || comment.PostID != payload.PostID {
		logger.Debugw("worker_comment_notify_skip_comment_gone", "comment_id", payload.CommentID, "post_id", payload.PostID)
		return nil
	}
	post, err := c.PostRepo.GetByID(payload.PostID)
	if err != nil {
		logger.Warnw("worker_comment_notify_fetch_post_failed", "post_id", payload.PostID, "error", err)
		return err
	}
	if post == nil {
		logger.Debugw("worker_comment_notify_skip_post_gone", "post_id", payload.PostID)
		return nil
	}
	if post.AuthorID == comment.AuthorID {
		logger.Debugw("worker_comment_notify_skip_self_comment", "comment_id", comment.ID, "post_id", post.ID)
		return nil
	}
	author, err := c.UserRepo.GetByID(post.AuthorID)
	if err != nil {
		logger.Warnw("worker_comment_notify_fetch_author_failed", "post_id", post.ID, "author_id", post.AuthorID, "error", err)
		return err
	}
	if author == nil || strings.TrimSpace(author.Email) == "" {
		logger.Debugw("worker_comment_notify_skip_empty_receiver", "post_id", post.ID, "author_id", post.AuthorID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_comment_notify_skip_email_service_nil", "comment_id", comment.ID)
		return nil
	}
	commenterName := comment.Author.FullName()
	if strings.TrimSpace(commenterName) == "" {
		commenterName = comment.Author.Username
	}
	input := service.CommentNotifyEmailInput{
		PostTitle:     post.Title,
		CommenterName: commenterName,
		CommentText:   comment.Text,
	}
	if err := c.EmailService.SendCommentNotifyEmail(author.Email, input, author.Locale); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_comment_notify_skip_email_disabled", "comment_id", comment.ID)
			return nil
		}
		if errors.Is(err, service.ErrInvalidEmail) || errors.Is(err, service.ErrEmailRecipientRejected) {
			logger.Warnw("worker_comment_notify_skip_bad_receiver", "comment_id", comment.ID, "receiver_email", author.Email, "error", err)
			return nil
		}
		logger.Warnw("worker_comment_notify_send_failed",
			"comment_id", comment.ID,
			"post_id", post.ID,
			"receiver_email", author.Email,
			"error", err,
		)
		return err
	}
	return nil
}
