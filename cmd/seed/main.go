package main

import (
	"fmt"
	"time"

	"github.com/blogium-next/internal/config"
	"github.com/blogium-next/internal/constants"
	"github.com/blogium-next/internal/logger"
	"github.com/blogium-next/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 演示用户，密码统一为 blogium-demo
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("blogium-demo"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []models.User{
		{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: string(passwordHash),
			FirstName:    "爱丽丝",
			Bio:          "常驻北京的旅行与美食作者。",
			Locale:       "zh-CN",
			Status:       constants.UserStatusActive,
		},
		{
			Username:     "bob",
			Email:        "bob@example.com",
			PasswordHash: string(passwordHash),
			FirstName:    "Bob",
			LastName:     "Lee",
			Bio:          "Weekend photographer, writes about city walks.",
			Locale:       "en-US",
			Status:       constants.UserStatusActive,
		},
		{
			Username:     "carol",
			Email:        "carol@example.com",
			PasswordHash: string(passwordHash),
			Bio:          "已停用的演示账号。",
			Locale:       "zh-CN",
			Status:       constants.UserStatusDisabled,
		},
	}

	userIDs := map[string]uint{}
	for _, user := range users {
		var existing models.User
		if err := models.DB.Where("username = ?", user.Username).First(&existing).Error; err != nil {
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", user.Username, err)
				continue
			}
			stdLog.Printf("Created user: %s", user.Username)
			userIDs[user.Username] = user.ID
		} else {
			stdLog.Printf("User already exists: %s", existing.Username)
			userIDs[existing.Username] = existing.ID
		}
	}

	categories := []models.Category{
		{Slug: "travel", Title: "旅行", Description: "路线、攻略与途中见闻。", IsPublished: true},
		{Slug: "food", Title: "美食", Description: "餐馆探店与家常食谱。", IsPublished: true},
		{Slug: "drafts", Title: "编辑部草稿", Description: "尚未对外公开的栏目。", IsPublished: false},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Slug)
			categoryIDs[cat.Slug] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", existing.Slug)
			categoryIDs[existing.Slug] = existing.ID
		}
	}

	locations := []models.Location{
		{Name: "北京", IsPublished: true},
		{Name: "上海", IsPublished: true},
		{Name: "内部测试地点", IsPublished: false},
	}

	locationIDs := map[string]uint{}
	for _, loc := range locations {
		var existing models.Location
		if err := models.DB.Where("name = ?", loc.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&loc).Error; err != nil {
				stdLog.Printf("Failed to create location %s: %v", loc.Name, err)
				continue
			}
			stdLog.Printf("Created location: %s", loc.Name)
			locationIDs[loc.Name] = loc.ID
		} else {
			stdLog.Printf("Location already exists: %s", existing.Name)
			locationIDs[existing.Name] = existing.ID
		}
	}

	now := time.Now()
	travelID := categoryIDs["travel"]
	foodID := categoryIDs["food"]
	draftsID := categoryIDs["drafts"]
	beijingID := locationIDs["北京"]
	shanghaiID := locationIDs["上海"]

	posts := []models.Post{
		{
			Title:       "胡同深处的一日漫步",
			Text:        "从鼓楼出发，沿着南锣鼓巷一路向南。\n\n清晨的胡同还没有游客，早点铺子刚出笼的包子冒着热气。推荐从烟袋斜街绕到后海，沿湖走一圈大约四十分钟。",
			PubDate:     now.Add(-72 * time.Hour),
			AuthorID:    userIDs["alice"],
			CategoryID:  &travelID,
			LocationID:  &beijingID,
			IsPublished: true,
		},
		{
			Title:       "三家值得排队的本帮菜馆",
			Text:        "红烧肉的评判标准只有一个：收汁是否透亮。\n\n这三家店分别在黄浦、静安与徐汇，人均都在百元上下，适合周末约饭。",
			PubDate:     now.Add(-48 * time.Hour),
			AuthorID:    userIDs["alice"],
			CategoryID:  &foodID,
			LocationID:  &shanghaiID,
			IsPublished: true,
		},
		{
			Title:       "City Walk Notes: Along the Suzhou Creek",
			Text:        "Started from the M50 art district and followed the creek eastward.\n\nThe renovated warehouses make great photo spots in the late afternoon light.",
			PubDate:     now.Add(-24 * time.Hour),
			AuthorID:    userIDs["bob"],
			CategoryID:  &travelID,
			LocationID:  &shanghaiID,
			IsPublished: true,
		},
		{
			Title:       "定时发布：下周的展览预告",
			Text:        "这篇文章会在发布时间到达后自动对外可见。",
			PubDate:     now.Add(7 * 24 * time.Hour),
			AuthorID:    userIDs["bob"],
			CategoryID:  &travelID,
			IsPublished: true,
		},
		{
			Title:       "草稿：还没写完的食谱",
			Text:        "腌笃鲜的配料比例还在调整，先存着。",
			PubDate:     now.Add(-12 * time.Hour),
			AuthorID:    userIDs["alice"],
			CategoryID:  &foodID,
			IsPublished: false,
		},
		{
			Title:       "未公开栏目里的文章",
			Text:        "所属分类未发布，这篇文章不会出现在任何公开列表。",
			PubDate:     now.Add(-6 * time.Hour),
			AuthorID:    userIDs["bob"],
			CategoryID:  &draftsID,
			IsPublished: true,
		},
	}

	postIDs := map[string]uint{}
	for _, post := range posts {
		if post.AuthorID == 0 {
			stdLog.Printf("Skip post %q: author missing", post.Title)
			continue
		}
		var existing models.Post
		if err := models.DB.Where("title = ? AND author_id = ?", post.Title, post.AuthorID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&post).Error; err != nil {
				stdLog.Printf("Failed to create post %q: %v", post.Title, err)
				continue
			}
			stdLog.Printf("Created post: %s", post.Title)
			postIDs[post.Title] = post.ID
		} else {
			stdLog.Printf("Post already exists: %s", existing.Title)
			postIDs[existing.Title] = existing.ID
		}
	}

	comments := []models.Comment{
		{
			Text:     "后海那段路线我也走过，傍晚去光线更好。",
			PostID:   postIDs["胡同深处的一日漫步"],
			AuthorID: userIDs["bob"],
		},
		{
			Text:     "求第三家店的具体位置！",
			PostID:   postIDs["三家值得排队的本帮菜馆"],
			AuthorID: userIDs["bob"],
		},
		{
			Text:     "Great route, the warehouses look amazing at sunset.",
			PostID:   postIDs["City Walk Notes: Along the Suzhou Creek"],
			AuthorID: userIDs["alice"],
		},
	}

	for _, comment := range comments {
		if comment.PostID == 0 || comment.AuthorID == 0 {
			continue
		}
		var existing models.Comment
		if err := models.DB.Where("post_id = ? AND author_id = ? AND text = ?", comment.PostID, comment.AuthorID, comment.Text).First(&existing).Error; err != nil {
			if err := models.DB.Create(&comment).Error; err != nil {
				stdLog.Printf("Failed to create comment on post %d: %v", comment.PostID, err)
			} else {
				stdLog.Printf("Created comment on post %d", comment.PostID)
			}
		} else {
			stdLog.Printf("Comment already exists on post %d", comment.PostID)
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Users (alice / bob active, carol disabled, password: blogium-demo)")
	fmt.Println("- 3 Categories (travel / food published, drafts hidden)")
	fmt.Println("- 3 Locations (北京 / 上海 published)")
	fmt.Println("- 6 Posts (visible, scheduled, unpublished, hidden-category cases)")
	fmt.Println("- 3 Comments")
}
