package constants

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 用户角色常量
const (
	UserRoleMember = "member"
	UserRoleAuthor = "author"
)

// 发布状态常量
const (
	PublishStateDraft     = "draft"
	PublishStatePublished = "published"
	PublishStateWithdrawn = "withdrawn"
)

// 评论通知任务常量
const (
	TaskTypeCommentNotify = "blog:comment_notify"
	QueueDefault          = "default"
	QueueMail             = "mail"
)

// 验证码场景常量
const (
	CaptchaSceneRegister = "register"
	CaptchaSceneLogin    = "login"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 上传目录常量
const (
	UploadCategoryPostImage = "post_image"
	UploadCategoryAvatar    = "avatar"
	UploadCategoryCommon    = "common"
)

// 分页默认值常量
const (
	DefaultPageSize     = 10
	MaxPageSize         = 100
	ProfilePageSize     = 10
	AdminDefaultPerPage = 20
)
