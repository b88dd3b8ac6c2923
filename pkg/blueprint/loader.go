package blueprint

import (
	"fmt"
	"io/ioutil"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v2"

	"github.com/junbin-yang/go-statekit/pkg/logger"
)

// Loader 从文件加载蓝图，可选地监听文件变化自动重建
type Loader struct {
	mu        sync.RWMutex
	path      string
	reg       *Registry
	bp        *Blueprint
	log       logger.Logger
	callbacks []func(old, new *Blueprint)

	// 文件监听相关
	enableWatch bool
	debounce    time.Duration
	watcher     *fsnotify.Watcher
	quit        chan struct{}
	closeOnce   sync.Once
}

// Load 读取并构建蓝图文件
// path: 蓝图文件路径; reg: 回调注册表; options: 加载选项
func Load(path string, reg *Registry, options ...Option) (*Loader, error) {
	l := &Loader{
		path: path,
		reg:  reg,
		quit: make(chan struct{}),
	}

	for _, opt := range options {
		opt(l)
	}

	if err := l.Reload(); err != nil {
		return nil, err
	}

	if l.enableWatch {
		if err := l.startWatch(); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Blueprint 返回当前构建结果
func (l *Loader) Blueprint() *Blueprint {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bp
}

// OnChange 注册蓝图变更回调
func (l *Loader) OnChange(callback func(old, new *Blueprint)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callbacks = append(l.callbacks, callback)
}

// Reload 重新读取文件并重建蓝图，失败时保留旧蓝图
func (l *Loader) Reload() error {
	data, err := ioutil.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("read blueprint file failed: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("unmarshal blueprint failed: %w", err)
	}

	bp, err := Build(&def, l.reg)
	if err != nil {
		return fmt.Errorf("build blueprint failed: %w", err)
	}

	l.mu.Lock()
	old := l.bp
	l.bp = bp

	// 复制回调列表，在锁外触发
	callbacks := make([]func(old, new *Blueprint), len(l.callbacks))
	copy(callbacks, l.callbacks)
	l.mu.Unlock()

	for _, callback := range callbacks {
		callback(old, bp)
	}

	return nil
}

// Close 关闭加载器（停止文件监听）
func (l *Loader) Close() {
	l.closeOnce.Do(func() {
		close(l.quit)
		if l.watcher != nil {
			l.watcher.Close()
		}
	})
}

// logger 返回加载器使用的日志实现，未指定时回落到包级默认日志
func (l *Loader) logger() logger.Logger {
	if l.log != nil {
		return l.log
	}
	return logger.Default()
}

// startWatch 启动蓝图文件监听
func (l *Loader) startWatch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher failed: %w", err)
	}

	if err := watcher.Add(l.path); err != nil {
		watcher.Close()
		return fmt.Errorf("add watch path failed: %w", err)
	}

	l.watcher = watcher
	go l.watchLoop()
	return nil
}

// watchLoop 监听文件变化循环，防抖后自动重建
func (l *Loader) watchLoop() {
	debounceTimer := time.NewTimer(0)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}

	for {
		select {
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounceTimer.Reset(l.debounce)
			}

		case <-debounceTimer.C:
			if err := l.Reload(); err != nil {
				l.logger().Errorf("blueprint auto reload failed: %v", err)
			} else {
				l.logger().Infof("blueprint auto reloaded from: %s", l.path)
			}

		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.logger().Errorf("blueprint watch error: %v", err)

		case <-l.quit:
			return
		}
	}
}
