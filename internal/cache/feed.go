package cache

import (
	"context"
	"fmt"
	"time"
)

const feedKeyPrefix = "feed:home"

// FeedPage 首页列表缓存条目，仅缓存匿名访问的结果
type FeedPage struct {
	Payload  []byte `json:"payload"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	CachedAt int64  `json:"cached_at"`
}

func feedPageKey(page, pageSize int) string {
	return fmt.Sprintf("%s:%d:%d", feedKeyPrefix, page, pageSize)
}

// GetFeedPage 读取首页列表缓存
func GetFeedPage(ctx context.Context, page, pageSize int) (*FeedPage, bool, error) {
	var entry FeedPage
	hit, err := GetJSON(ctx, feedPageKey(page, pageSize), &entry)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &entry, true, nil
}

// SetFeedPage 写入首页列表缓存
func SetFeedPage(ctx context.Context, entry *FeedPage, pageSize int, ttl time.Duration) error {
	if entry == nil || ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, feedPageKey(entry.Page, pageSize), entry, ttl)
}

// InvalidateFeed 文章或分类变化后使首页缓存失效
func InvalidateFeed(ctx context.Context) error {
	return DelByPrefix(ctx, feedKeyPrefix)
}
