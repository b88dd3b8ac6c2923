package blueprint

import (
	"sync"

	"github.com/junbin-yang/go-statekit/pkg/transition"
)

// Registry 蓝图中回调名到 Go 函数的注册表
type Registry struct {
	mu      sync.RWMutex
	actions map[string]transition.Action
	guards  map[string]transition.GuardFunc
	hooks   map[string]transition.Hook
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]transition.Action),
		guards:  make(map[string]transition.GuardFunc),
		hooks:   make(map[string]transition.Hook),
	}
}

// RegisterAction 注册转换动作，同名覆盖
func (r *Registry) RegisterAction(name string, fn transition.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = fn
}

// RegisterGuard 注册守卫条件，同名覆盖
func (r *Registry) RegisterGuard(name string, fn transition.GuardFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guards[name] = fn
}

// RegisterHook 注册 before/after 回调，同名覆盖
func (r *Registry) RegisterHook(name string, fn transition.Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[name] = fn
}

func (r *Registry) action(name string) (transition.Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.actions[name]
	return fn, ok
}

func (r *Registry) guard(name string) (transition.GuardFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.guards[name]
	return fn, ok
}

func (r *Registry) hook(name string) (transition.Hook, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.hooks[name]
	return fn, ok
}
