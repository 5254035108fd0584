// Package components 定义机械装置的部件
//
// 每个部件都是一个 Component（有位置、有本地时间、可推进、可重置、可绘制），
// 再按需实现小的能力接口：
//   - RotationSink：可以接收旋转（Shaft、Pulley、Cam）
//   - KeyFallListener：可以接收凸轮的钥匙下落事件（Box、Sparty）
//
// 旋转通过 RotationSource 推送，整条传动链在一次 SetRotation 调用内同步完成。
// 部件之间的连线只在工厂构建时建立，之后只读。
package components

import "github.com/decker502/machinesim/pkg/graphics"

// Component 机械部件
type Component interface {
	// Advance 推进 delta 秒
	Advance(delta float64)
	// Reset 恢复到构建时的静止状态
	Reset()
	// Draw 绘制部件主体
	Draw(gc graphics.Context)
	// DrawForeground 绘制需要覆盖在其他部件之上的部分（如皮带、盒子正面）
	DrawForeground(gc graphics.Context)

	SetPosition(x, y float64)
	X() float64
	Y() float64
	// Time 自上次 Reset 以来 Advance 的 delta 之和
	Time() float64
	// State 当前状态快照
	State() State
}

// State 部件状态快照
//
// Values 保存部件特有的数值（旋转、开盖角度等），用于确定性比较和调试输出。
type State struct {
	Kind   string             `yaml:"kind" msgpack:"kind"`
	X      float64            `yaml:"x" msgpack:"x"`
	Y      float64            `yaml:"y" msgpack:"y"`
	Time   float64            `yaml:"time" msgpack:"time"`
	Values map[string]float64 `yaml:"values,omitempty" msgpack:"values,omitempty"`
}

// Base 部件公共数据，由具体部件嵌入
type Base struct {
	x, y float64
	time float64
}

// SetPosition 设置部件位置（相对于机器原点）
func (b *Base) SetPosition(x, y float64) {
	b.x = x
	b.y = y
}

// X 返回 X 坐标
func (b *Base) X() float64 { return b.x }

// Y 返回 Y 坐标
func (b *Base) Y() float64 { return b.y }

// Time 返回本地时间（秒）
func (b *Base) Time() float64 { return b.time }

// Advance 累加本地时间
func (b *Base) Advance(delta float64) {
	b.time += delta
}

// Reset 清零本地时间
func (b *Base) Reset() {
	b.time = 0
}

// DrawForeground 默认没有前景
func (b *Base) DrawForeground(gc graphics.Context) {}

// state 构造带公共字段的快照
func (b *Base) state(kind string, values map[string]float64) State {
	return State{
		Kind:   kind,
		X:      b.x,
		Y:      b.y,
		Time:   b.time,
		Values: values,
	}
}

// boolValue 把布尔值写入快照
func boolValue(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
