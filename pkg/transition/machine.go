package transition

import (
	"sync"
	"time"
)

// Machine 状态属性的最小载体，业务结构体通过内嵌获得 state 字段。
// 状态写入会广播条件变量，供 WaitForState 使用；状态读取不加锁，
// 一次完整的转换调用（读-判-写）不具备原子性。
// 多个协程并发触发同一实例的转换可能丢失更新，
// 需要并发安全时由调用方在每次调用外围自行加锁。
type Machine struct {
	mu    *sync.Mutex
	cond  *sync.Cond
	state State
	last  *Binding
}

// NewMachine 创建状态载体并显式初始化默认状态
func NewMachine(initial State) Machine {
	mu := &sync.Mutex{}
	return Machine{
		mu:    mu,
		cond:  sync.NewCond(mu),
		state: initial,
	}
}

// CurrentState 返回当前状态，任意时刻可读（包括转换调用之外）
func (m *Machine) CurrentState() State {
	return m.state
}

// SetState 覆盖当前状态并唤醒所有 WaitForState 等待者
func (m *Machine) SetState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
	m.cond.Broadcast()
}

// WaitForState 阻塞等待状态变为 want。
// 到达返回 true，超时返回 false；timeout < 0 表示无限等待。
func (m *Machine) WaitForState(want State, timeout time.Duration) bool {
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for m.state != want {
		if timeout < 0 {
			m.cond.Wait()
			continue
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}

		// sync.Cond 不支持带超时的等待，到期后由定时器广播唤醒再检查一次
		t := time.AfterFunc(remaining, m.cond.Broadcast)
		m.cond.Wait()
		t.Stop()
	}

	return true
}

func (m *Machine) lastBinding() *Binding {
	return m.last
}

func (m *Machine) setLastBinding(b *Binding) {
	m.last = b
}
