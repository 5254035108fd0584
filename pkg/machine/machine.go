// Package machine 提供 Machine：一组有序部件的聚合
//
// Machine 独占它的所有部件，部件之间的旋转连线和事件连线只引用同一台
// Machine 中的其他部件，因此整张图随 Machine 一起创建、一起丢弃。
// 插入顺序同时是推进顺序、重置顺序和绘制顺序。
package machine

import (
	"github.com/decker502/machinesim/pkg/components"
	"github.com/decker502/machinesim/pkg/graphics"
)

// Machine 机械装置
type Machine struct {
	number     int
	components []components.Component
	time       float64
}

// NewMachine 创建编号为 number 的空机器
func NewMachine(number int) *Machine {
	return &Machine{
		number:     number,
		components: make([]components.Component, 0),
	}
}

// Number 返回机器编号
func (m *Machine) Number() int {
	return m.number
}

// AddComponent 追加部件（不负责连线，连线是工厂的职责）
func (m *Machine) AddComponent(c components.Component) {
	m.components = append(m.components, c)
}

// Components 返回部件列表（按插入顺序，只读）
func (m *Machine) Components() []components.Component {
	return m.components
}

// Advance 按插入顺序推进所有部件，然后累加机器时间
func (m *Machine) Advance(delta float64) {
	for _, c := range m.components {
		c.Advance(delta)
	}
	m.time += delta
}

// Reset 按插入顺序重置所有部件，然后清零机器时间
func (m *Machine) Reset() {
	for _, c := range m.components {
		c.Reset()
	}
	m.time = 0
}

// SetTime 设置机器时间（由 MachineSystem 按 frame/frameRate 校正）
func (m *Machine) SetTime(time float64) {
	m.time = time
}

// Time 返回机器时间（秒）
func (m *Machine) Time() float64 {
	return m.time
}

// Draw 绘制机器
//
// 两遍：先按顺序绘制所有部件主体，再按顺序绘制前景（皮带、盒子正面），
// 后绘制的在上层。
func (m *Machine) Draw(gc graphics.Context) {
	for _, c := range m.components {
		c.Draw(gc)
	}
	for _, c := range m.components {
		c.DrawForeground(gc)
	}
}

// Snapshot 按插入顺序返回所有部件的状态快照
func (m *Machine) Snapshot() []components.State {
	states := make([]components.State, 0, len(m.components))
	for _, c := range m.components {
		states = append(states, c.State())
	}
	return states
}

// Find 返回第一个满足类型 T 的部件
func Find[T components.Component](m *Machine) (T, bool) {
	for _, c := range m.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// FindAll 返回所有满足类型 T 的部件（按插入顺序）
func FindAll[T components.Component](m *Machine) []T {
	result := make([]T, 0)
	for _, c := range m.components {
		if t, ok := c.(T); ok {
			result = append(result, t)
		}
	}
	return result
}
