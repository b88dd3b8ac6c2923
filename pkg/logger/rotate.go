package logger

import (
	"io"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewSizeRotateWriter 按文件大小滚动的日志输出
// maxSizeMB: 单个文件上限(MB); maxBackups: 保留的历史文件数; maxAgeDays: 保留天数
func NewSizeRotateWriter(path string, maxSizeMB, maxBackups, maxAgeDays int) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		LocalTime:  true,
	}
}

// NewTimeRotateWriter 按时间滚动的日志输出，pattern 中可使用 strftime 格式化符
// 例如 "./logs/app.%Y%m%d.log"
func NewTimeRotateWriter(pattern string, rotationTime, maxAge time.Duration) (io.Writer, error) {
	return rotatelogs.New(
		pattern,
		rotatelogs.WithRotationTime(rotationTime),
		rotatelogs.WithMaxAge(maxAge),
	)
}
