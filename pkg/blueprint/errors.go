package blueprint

import "fmt"

var (
	// ErrMissingInitial 当定义缺少初始状态时返回
	ErrMissingInitial = fmt.Errorf("missing initial state")

	// ErrInvalidTransitionDef 当转换声明缺少名称/源状态/目标状态时返回
	ErrInvalidTransitionDef = fmt.Errorf("invalid transition definition")

	// ErrUnknownAction 当 body 引用了未注册的动作时返回
	ErrUnknownAction = fmt.Errorf("unknown action")

	// ErrUnknownGuard 当 guard 引用了未注册的守卫时返回
	ErrUnknownGuard = fmt.Errorf("unknown guard")

	// ErrUnknownHook 当 before/after 引用了未注册的回调时返回
	ErrUnknownHook = fmt.Errorf("unknown hook")
)
