// Package blueprint 从 YAML 文档加载转换表定义并构建 transition 绑定。
// 仅序列化转换的声明（源状态/目标状态/回调名），不持久化机器的运行时状态。
package blueprint

import (
	"fmt"

	"github.com/junbin-yang/go-statekit/pkg/transition"
)

// Definition 蓝图文件的顶层结构
type Definition struct {
	Name        string           `yaml:"name"`
	Initial     transition.State `yaml:"initial"`
	Transitions []TransitionDef  `yaml:"transitions"`
}

// TransitionDef 单条转换的声明，body/guard/before/after 为注册表中的回调名
type TransitionDef struct {
	Name   string           `yaml:"name"`
	From   stateList        `yaml:"from"`
	To     transition.State `yaml:"to"`
	Body   string           `yaml:"body,omitempty"`
	Guard  string           `yaml:"guard,omitempty"`
	Before string           `yaml:"before,omitempty"`
	After  string           `yaml:"after,omitempty"`
}

// stateList 允许 from 写成单个标量或列表
type stateList []transition.State

func (s *stateList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var one transition.State
	if err := unmarshal(&one); err == nil {
		*s = stateList{one}
		return nil
	}

	var many []transition.State
	if err := unmarshal(&many); err != nil {
		return err
	}
	*s = many
	return nil
}

// Blueprint 由定义构建出的一组命名转换绑定
type Blueprint struct {
	name     string
	initial  transition.State
	bindings map[string]*transition.Binding
}

// Build 根据定义和回调注册表构建蓝图。
// 同名转换后者覆盖前者，与代码中重复声明同名转换的行为一致。
func Build(def *Definition, reg *Registry) (*Blueprint, error) {
	if def.Initial == "" {
		return nil, ErrMissingInitial
	}

	bp := &Blueprint{
		name:     def.Name,
		initial:  def.Initial,
		bindings: make(map[string]*transition.Binding, len(def.Transitions)),
	}

	for _, td := range def.Transitions {
		b, err := buildBinding(td, reg)
		if err != nil {
			return nil, err
		}
		bp.bindings[td.Name] = b
	}

	return bp, nil
}

// buildBinding 构建单条转换绑定
func buildBinding(td TransitionDef, reg *Registry) (*transition.Binding, error) {
	if td.Name == "" || len(td.From) == 0 || td.To == "" {
		return nil, fmt.Errorf("%w: name=%q from=%v to=%q", ErrInvalidTransitionDef, td.Name, td.From, td.To)
	}

	var body transition.Action
	if td.Body != "" {
		fn, ok := reg.action(td.Body)
		if !ok {
			return nil, fmt.Errorf("%w: %q (transition %q)", ErrUnknownAction, td.Body, td.Name)
		}
		body = fn
	}

	b := transition.Define(td.From[0], td.To, body)
	if len(td.From) > 1 {
		b.OrFrom(td.From[1:]...)
	}

	if td.Guard != "" {
		fn, ok := reg.guard(td.Guard)
		if !ok {
			return nil, fmt.Errorf("%w: %q (transition %q)", ErrUnknownGuard, td.Guard, td.Name)
		}
		b.Guard(fn)
	}

	if td.Before != "" {
		fn, ok := reg.hook(td.Before)
		if !ok {
			return nil, fmt.Errorf("%w: %q (transition %q)", ErrUnknownHook, td.Before, td.Name)
		}
		b.Before(fn)
	}

	if td.After != "" {
		fn, ok := reg.hook(td.After)
		if !ok {
			return nil, fmt.Errorf("%w: %q (transition %q)", ErrUnknownHook, td.After, td.Name)
		}
		b.After(fn)
	}

	return b, nil
}

// Name 返回蓝图名称
func (bp *Blueprint) Name() string {
	return bp.name
}

// Initial 返回声明的初始状态
func (bp *Blueprint) Initial() transition.State {
	return bp.initial
}

// Binding 按名称获取转换绑定
func (bp *Blueprint) Binding(name string) (*transition.Binding, bool) {
	b, ok := bp.bindings[name]
	return b, ok
}

// Names 返回所有转换名称
func (bp *Blueprint) Names() []string {
	names := make([]string, 0, len(bp.bindings))
	for name := range bp.bindings {
		names = append(names, name)
	}
	return names
}

// NewMachine 按蓝图的初始状态创建状态载体
func (bp *Blueprint) NewMachine() transition.Machine {
	return transition.NewMachine(bp.initial)
}
