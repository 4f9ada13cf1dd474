package repository

import "gorm.io/gorm"

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}

// ClampPage 把页码收敛到 [1, 最后一页]。
// 超出末页的请求落在最后一页而不是返回空列表。
func ClampPage(page int, total int64, pageSize int) int {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	lastPage := int((total + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		return lastPage
	}
	return page
}

// TotalPages 计算总页数，空结果集记为 1 页。
func TotalPages(total int64, pageSize int) int64 {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
