package xloader

import "errors"

var (
	// ErrNilCache 表示传入的缓存为 nil。
	ErrNilCache = errors.New("xloader: nil cache")

	// ErrNilLoader 表示传入的加载函数为 nil。
	ErrNilLoader = errors.New("xloader: nil loader function")
)
