package i18n

// catalog 内置文案表，按语言分组
var catalog = map[string]map[string]string{
	"zh-CN": {
		"error.invalid_params":           "请求参数不合法",
		"error.not_found":                "资源不存在",
		"error.forbidden":                "没有访问权限",
		"error.unauthorized":             "请先登录",
		"error.internal":                 "服务器内部错误",
		"error.rate_limited":             "请求过于频繁，请 %d 秒后再试",
		"error.auth_header_missing":      "缺少认证信息",
		"error.auth_header_invalid":      "认证信息格式错误",
		"error.token_invalid":            "登录凭证无效",
		"error.token_revoked":            "登录凭证已失效，请重新登录",
		"error.jwt_secret_missing":       "服务端未配置签名密钥",
		"error.login_failed":             "用户名或密码错误",
		"error.account_disabled":         "账号已被禁用",
		"error.captcha_invalid":          "验证码错误或已过期",
		"error.captcha_required":         "需要验证码",
		"error.username_exists":          "用户名已被占用",
		"error.email_exists":             "邮箱已被注册",
		"error.slug_exists":              "标识符已存在",
		"error.category_not_found":       "分类不存在或未发布",
		"error.post_not_found":           "文章不存在",
		"error.comment_not_found":        "评论不存在",
		"error.profile_not_found":        "用户不存在",
		"error.profile_empty":            "没有需要更新的资料",
		"error.old_password_mismatch":    "原密码不正确",
		"error.password_min_length":      "密码长度至少 %d 位",
		"error.password_require_upper":   "密码需包含大写字母",
		"error.password_require_lower":   "密码需包含小写字母",
		"error.password_require_number":  "密码需包含数字",
		"error.password_require_special": "密码需包含特殊字符",
		"error.upload_too_large":         "文件大小超出限制（最大 %d MB）",
		"error.upload_type_invalid":      "不支持的文件类型",
		"error.email_not_configured":     "邮件服务未配置",
		"error.location_not_found":       "地点不存在",
		"error.login_too_many":           "登录尝试过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable":   "限流服务暂不可用",
		"error.user_disabled":            "账号已被禁用，请联系管理员",
		"error.user_id_invalid":          "登录状态缺失",
		"error.user_id_type_invalid":     "登录状态异常",
		"error.admin_id_invalid":         "管理员会话缺失",
		"error.admin_id_type_invalid":    "管理员会话异常",

		"success.registered":       "注册成功",
		"success.password_changed": "密码修改成功",
		"success.deleted":          "删除成功",

		"email.comment_notify.subject": "你的文章《%s》有新评论",
		"email.comment_notify.body":    "%s 在你的文章《%s》下发表了新评论：\n\n%s\n\n登录后可查看并回复。",
	},
	"en-US": {
		"error.invalid_params":           "invalid request parameters",
		"error.not_found":                "resource not found",
		"error.forbidden":                "permission denied",
		"error.unauthorized":             "login required",
		"error.internal":                 "internal server error",
		"error.rate_limited":             "too many requests, retry in %d seconds",
		"error.auth_header_missing":      "missing authorization header",
		"error.auth_header_invalid":      "malformed authorization header",
		"error.token_invalid":            "invalid token",
		"error.token_revoked":            "token revoked, please login again",
		"error.jwt_secret_missing":       "signing secret not configured",
		"error.login_failed":             "incorrect username or password",
		"error.account_disabled":         "account disabled",
		"error.captcha_invalid":          "captcha incorrect or expired",
		"error.captcha_required":         "captcha required",
		"error.username_exists":          "username already taken",
		"error.email_exists":             "email already registered",
		"error.slug_exists":              "slug already exists",
		"error.category_not_found":       "category not found or unpublished",
		"error.post_not_found":           "post not found",
		"error.comment_not_found":        "comment not found",
		"error.profile_not_found":        "user not found",
		"error.profile_empty":            "nothing to update",
		"error.old_password_mismatch":    "old password does not match",
		"error.password_min_length":      "password must be at least %d characters",
		"error.password_require_upper":   "password must contain an uppercase letter",
		"error.password_require_lower":   "password must contain a lowercase letter",
		"error.password_require_number":  "password must contain a digit",
		"error.password_require_special": "password must contain a special character",
		"error.upload_too_large":         "file exceeds size limit (max %d MB)",
		"error.upload_type_invalid":      "unsupported file type",
		"error.email_not_configured":     "email service not configured",
		"error.location_not_found":       "location not found",
		"error.login_too_many":           "too many login attempts, retry in %d seconds",
		"error.rate_limit_unavailable":   "rate limiter unavailable",
		"error.user_disabled":            "account disabled, contact the administrator",
		"error.user_id_invalid":          "login session missing",
		"error.user_id_type_invalid":     "login session corrupted",
		"error.admin_id_invalid":         "admin session missing",
		"error.admin_id_type_invalid":    "admin session corrupted",

		"success.registered":       "registered",
		"success.password_changed": "password changed",
		"success.deleted":          "deleted",

		"email.comment_notify.subject": "New comment on your post \"%s\"",
		"email.comment_notify.body":    "%s left a new comment on your post \"%s\":\n\n%s\n\nSign in to view and reply.",
	},
}
