package blueprint

import (
	"time"

	"github.com/junbin-yang/go-statekit/pkg/logger"
)

// Option 加载器选项
type Option func(*Loader)

// WithWatch 启用蓝图文件监听（文件变化防抖后自动重建）
func WithWatch(debounce time.Duration) Option {
	return func(l *Loader) {
		l.enableWatch = true
		l.debounce = debounce
		if debounce == 0 {
			l.debounce = 500 * time.Millisecond
		}
	}
}

// WithLogger 指定加载器使用的日志实现，缺省使用包级默认日志
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}
