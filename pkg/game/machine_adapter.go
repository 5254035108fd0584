// Package game 提供宿主场景的支撑部分：机器适配器、贴图资源和存档。
package game

import (
	"log"

	"github.com/decker502/machinesim/pkg/config"
	"github.com/decker502/machinesim/pkg/entities"
	"github.com/decker502/machinesim/pkg/graphics"
	"github.com/decker502/machinesim/pkg/systems"
)

// MachineAdapter 把一台机器放进宿主场景
//
// 宿主只有一条时间轴。机器从 startFrame 开始运行，
// 时间轴帧 f 对应机器帧 max(0, f-startFrame)。
type MachineAdapter struct {
	name       string
	system     *systems.MachineSystem
	startFrame int

	// 最近一次 SetFrame 的时间轴帧，换机器或改开始帧后用它重新同步
	timelineFrame int
}

// NewMachineAdapter 创建适配器，默认使用 1 号机器、从第 0 帧开始
//
// 参数：
//   - name: 机器名称，同时是存档的键
//   - images: 贴图加载器，可为 nil
func NewMachineAdapter(name string, images entities.ImageLoader) *MachineAdapter {
	return &MachineAdapter{
		name:   name,
		system: systems.NewMachineSystem(images),
	}
}

// NewMachineAdapterFromConfig 按场景配置创建适配器
func NewMachineAdapterFromConfig(placed config.PlacedMachine, frameRate float64, images entities.ImageLoader) *MachineAdapter {
	a := NewMachineAdapter(placed.Name, images)
	a.system.SetFrameRate(frameRate)
	a.SetMachineNumber(placed.Number)
	a.SetStartFrame(placed.StartFrame)
	a.SetLocation(placed.Location.X, placed.Location.Y)
	return a
}

// Name 返回机器名称
func (a *MachineAdapter) Name() string {
	return a.name
}

// System 返回底层的机器系统
func (a *MachineAdapter) System() *systems.MachineSystem {
	return a.system
}

// MachineNumber 返回机器编号
func (a *MachineAdapter) MachineNumber() int {
	return a.system.MachineNumber()
}

// SetMachineNumber 更换机器并重新播放到当前时间轴帧，未知编号不做改变
func (a *MachineAdapter) SetMachineNumber(number int) {
	if number == a.system.MachineNumber() {
		return
	}
	a.system.ChooseMachine(number)
	a.SetFrame(a.timelineFrame)
}

// StartFrame 返回开始帧
func (a *MachineAdapter) StartFrame() int {
	return a.startFrame
}

// SetStartFrame 设置开始帧（负数按 0 处理）并重新同步
func (a *MachineAdapter) SetStartFrame(frame int) {
	if frame < 0 {
		frame = 0
	}
	a.startFrame = frame
	a.SetFrame(a.timelineFrame)
}

// SetFrameRate 设置帧率并从第 0 帧重新播放
func (a *MachineAdapter) SetFrameRate(rate float64) {
	a.system.SetFrameRate(rate)
	a.system.Reset()
	a.SetFrame(a.timelineFrame)
}

// SetLocation 设置机器锚点
func (a *MachineAdapter) SetLocation(x, y float64) {
	a.system.SetLocation(x, y)
}

// Location 返回机器锚点
func (a *MachineAdapter) Location() (x, y float64) {
	return a.system.Location()
}

// TimelineFrame 返回最近一次设置的时间轴帧
func (a *MachineAdapter) TimelineFrame() int {
	return a.timelineFrame
}

// MachineFrame 返回机器自身的帧号
func (a *MachineAdapter) MachineFrame() int {
	return a.system.Frame()
}

// SetFrame 按时间轴帧更新机器
func (a *MachineAdapter) SetFrame(frame int) {
	a.timelineFrame = frame
	local := frame - a.startFrame
	if local < 0 {
		local = 0
	}
	a.system.SetMachineFrame(local)
}

// Draw 绘制机器
func (a *MachineAdapter) Draw(gc graphics.Context) {
	a.system.DrawMachine(gc)
}

// HitTest 点是否落在机器上
func (a *MachineAdapter) HitTest(x, y float64) bool {
	return a.system.HitTest(x, y)
}

// Record 返回存档内容
func (a *MachineAdapter) Record() MachineRecord {
	return MachineRecord{
		Machine: a.system.MachineNumber(),
		Start:   a.startFrame,
	}
}

// ApplyRecord 应用存档，之后的画面与保存时一致
func (a *MachineAdapter) ApplyRecord(record MachineRecord) {
	a.SetMachineNumber(record.Machine)
	a.SetStartFrame(record.Start)
	log.Printf("[MachineAdapter] %s restored: machine=%d start=%d", a.name, a.MachineNumber(), a.startFrame)
}
