package queue

import (
	"encoding/json"

	"github.com/blogium-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCommentNotify 新评论通知文章作者任务
	TaskCommentNotify = constants.TaskTypeCommentNotify
)

// CommentNotifyPayload 评论通知任务载荷
type CommentNotifyPayload struct {
	CommentID uint `json:"comment_id"`
	PostID    uint `json:"post_id"`
}

// NewCommentNotifyTask 创建评论通知任务
func NewCommentNotifyTask(payload CommentNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCommentNotify, body), nil
}
