package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 兜底语言
const DefaultLocale = "zh-CN"

// localeQueryKey 允许通过 query 显式指定语言
const localeQueryKey = "locale"

var supportedLocales = map[string]string{
	"zh":    "zh-CN",
	"zh-cn": "zh-CN",
	"en":    "en-US",
	"en-us": "en-US",
}

// ResolveLocale 解析请求语言，优先 query 参数，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}

	if locale, ok := normalizeLocale(c.Query(localeQueryKey)); ok {
		return locale
	}

	acceptLanguage := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale, ok := normalizeLocale(tag); ok {
			return locale
		}
	}

	return DefaultLocale
}

// T 按 key 返回指定语言文案，缺失时回退默认语言
func T(locale string, key string) string {
	if messages, ok := catalog[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 按 key 返回带参数的文案
func Sprintf(locale string, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func normalizeLocale(raw string) (string, bool) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return "", false
	}
	if locale, ok := supportedLocales[tag]; ok {
		return locale, true
	}
	// 容忍 en-GB 这类未登记的地区变体
	if idx := strings.Index(tag, "-"); idx > 0 {
		if locale, ok := supportedLocales[tag[:idx]]; ok {
			return locale, true
		}
	}
	return "", false
}
