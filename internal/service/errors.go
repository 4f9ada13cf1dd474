package service

import "errors"

// 服务层业务错误，handler 负责映射为响应码与文案
var (
	ErrNotFound             = errors.New("资源不存在")
	ErrInvalidInput         = errors.New("请求参数不合法")
	ErrForbidden            = errors.New("没有操作权限")
	ErrInvalidCredentials   = errors.New("用户名或密码错误")
	ErrInvalidPassword      = errors.New("原密码不正确")
	ErrUserDisabled         = errors.New("账号已被禁用")
	ErrUsernameExists       = errors.New("用户名已被占用")
	ErrEmailExists          = errors.New("邮箱已被注册")
	ErrSlugExists           = errors.New("标识符已存在")
	ErrWeakPassword         = errors.New("密码不符合安全策略")
	ErrProfileEmpty         = errors.New("没有需要更新的资料")
	ErrCommentNotInPost     = errors.New("评论不属于该文章")
	ErrCaptchaRequired      = errors.New("需要验证码")
	ErrCaptchaInvalid       = errors.New("验证码错误或已过期")
	ErrCaptchaConfigInvalid = errors.New("验证码配置不可用")

	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrInvalidEmail              = errors.New("邮箱格式不正确")
	ErrEmailRecipientRejected    = errors.New("收件地址不可用")
)
