package transition

import (
	"github.com/junbin-yang/go-statekit/pkg/logger"
)

// Binding 绑定到一个方法名上的单条转换规则。
// 同一方法名在同一类型中只对应一个 Binding：链式附加方法
// （OrFrom/Guard/Before/After/Exit）原地修改并返回同一实例，
// 重复附加时后写覆盖先写，不报错。
// 构造完成后除各回调槽位外视为只读。
type Binding struct {
	from   []State
	to     State
	body   Action
	guard  GuardFunc
	before Hook
	after  Hook
	exit   Hook
}

// Define 声明一条转换规则：当前状态为 from 时允许执行 body 并把状态置为 to。
// from == to 为合法的自转换（动作照常执行，状态值不变）。
// 不做可达性校验，声明了永远无法触发的转换也不报错。
func Define(from, to State, body Action) *Binding {
	logger.Debugf("创建转换绑定: %q -> %q", from, to)
	return &Binding{
		from: []State{from},
		to:   to,
		body: body,
	}
}

// OrFrom 追加可选的源状态，处于其中任意一个状态时该转换均可执行
func (b *Binding) OrFrom(states ...State) *Binding {
	b.from = append(b.from, states...)
	return b
}

// Guard 附加守卫条件，返回 false 时本次调用不产生任何副作用。
// 恒为 false 的守卫会让该转换永远无法触发，这是允许的。
func (b *Binding) Guard(fn GuardFunc) *Binding {
	logger.Debugf("注册守卫条件: -> %q", b.to)
	b.guard = fn
	return b
}

// Before 附加前置回调，在守卫通过之后、方法体执行之前调用
func (b *Binding) Before(fn Hook) *Binding {
	logger.Debugf("注册 before 回调: -> %q", b.to)
	b.before = fn
	return b
}

// After 附加后置回调，在状态已更新为 to 之后调用，仅在转换成功时执行
func (b *Binding) After(fn Hook) *Binding {
	logger.Debugf("注册 after 回调: -> %q", b.to)
	b.after = fn
	return b
}

// Exit 附加退出回调，在下一条转换触发、即将离开本转换进入的状态时调用
func (b *Binding) Exit(fn Hook) *Binding {
	logger.Debugf("注册 exit 回调: -> %q", b.to)
	b.exit = fn
	return b
}

// From 返回该转换允许的源状态列表
func (b *Binding) From() []State {
	return b.from
}

// To 返回转换成功后的目标状态
func (b *Binding) To() State {
	return b.to
}

// Invoke 执行一次转换调用，args 原样转发给守卫、方法体和各回调。
// 状态不匹配或守卫未通过时为定义好的空操作：原样返回当前状态，
// 不执行方法体和任何回调，也不视为错误。
// 转换成功时返回更新后的新状态。
func (b *Binding) Invoke(owner Stateful, args ...interface{}) State {
	cur := owner.CurrentState()

	if !b.eligible(cur) {
		logger.Debugf("当前状态 %q 不支持该转换", cur)
		return cur
	}

	if b.guard != nil && !b.guard(owner, args...) {
		logger.Debugf("守卫条件未通过, 保持状态 %q", cur)
		return cur
	}

	logger.Debugf("状态转换: %q -> %q", cur, b.to)

	// 先执行上一条转换注册的 exit 回调，再进入本次转换
	if t, ok := owner.(lastTracker); ok {
		if prev := t.lastBinding(); prev != nil && prev.exit != nil {
			prev.exit(owner, args...)
		}
	}

	if b.before != nil {
		b.before(owner, args...)
	}

	if b.body != nil {
		b.body(owner, args...)
	}

	owner.SetState(b.to)

	if t, ok := owner.(lastTracker); ok {
		t.setLastBinding(b)
	}

	if b.after != nil {
		b.after(owner, args...)
	}

	return owner.CurrentState()
}

// eligible 判断当前状态是否在源状态列表中
func (b *Binding) eligible(cur State) bool {
	for _, s := range b.from {
		if s == cur {
			return true
		}
	}
	return false
}
