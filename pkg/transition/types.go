// Package transition 以声明方式给对象的方法附加简单的状态机语义。
// 每条转换规则绑定到一个方法名上：调用被拦截后依次完成
// 状态检查 -> 守卫判断 -> 方法体 -> 状态赋值 -> after 回调。
package transition

// State 状态机中的状态值，任意不透明的可比较标识
type State string

// Stateful 持有状态属性的对象，业务结构体内嵌 Machine 即可满足该接口
type Stateful interface {
	// CurrentState 返回当前状态
	CurrentState() State

	// SetState 覆盖当前状态
	SetState(State)
}

// Action 转换的方法体，返回值不参与状态机本身的返回
type Action func(owner Stateful, args ...interface{})

// GuardFunc 守卫条件，返回 false 时拒绝本次转换
type GuardFunc func(owner Stateful, args ...interface{}) bool

// Hook 转换过程中的回调（before/after/exit），仅用于副作用
type Hook func(owner Stateful, args ...interface{})

// lastTracker 记录最近一次成功执行的转换，用于触发其 exit 回调
type lastTracker interface {
	lastBinding() *Binding
	setLastBinding(*Binding)
}
