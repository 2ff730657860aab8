package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageNone  = "none"
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeSVG = "image/svg+xml"

	// SVGDataURIPrefix 徽章 data URI 前缀
	SVGDataURIPrefix = "data:" + MimeSVG + ";base64,"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ContextUserKey gin 上下文中当前用户的键
const ContextUserKey = "user"
