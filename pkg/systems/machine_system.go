// Package systems 提供机器的时间控制：帧号到机器状态的映射、帧率、
// 绘制锚点和点击检测。
package systems

import (
	"log"
	"math"

	"github.com/decker502/machinesim/pkg/entities"
	"github.com/decker502/machinesim/pkg/graphics"
	"github.com/decker502/machinesim/pkg/machine"
)

const (
	// DefaultFrameRate 默认帧率
	DefaultFrameRate = 30.0
	// HitTestHalfSize 点击检测半宽
	HitTestHalfSize = 50
)

// MachineSystem 机器时间控制门面
//
// 宿主只通过帧号驱动机器：SetMachineFrame 总是得到从第 0 帧开始逐帧
// 正向播放到目标帧的状态。目标帧早于当前帧时先完全重置再重放，
// 不缓存任何中间状态（Sparty 的晃动衰减等时间积分效果无法反向推导）。
//
// 单线程使用，所有方法同步完成。
type MachineSystem struct {
	images entities.ImageLoader

	machineNumber int
	machine       *machine.Machine

	frame     int
	frameRate float64

	locationX, locationY float64
}

// NewMachineSystem 创建机器系统并选择 1 号机器
//
// 参数：
//   - images: 贴图加载器，可为 nil（纯色绘制）
func NewMachineSystem(images entities.ImageLoader) *MachineSystem {
	s := &MachineSystem{
		images:    images,
		frameRate: DefaultFrameRate,
	}
	s.ChooseMachine(1)
	return s
}

// ChooseMachine 选择机器
//
// 丢弃当前机器并用对应工厂构建新机器，帧号和时间归零。
// 未知编号不做任何改变。
func (s *MachineSystem) ChooseMachine(number int) {
	factory, err := entities.NewMachineFactory(number, s.images)
	if err != nil {
		log.Printf("[MachineSystem] Ignoring machine selection: %v", err)
		return
	}

	s.machineNumber = number
	s.machine = factory.Create()
	s.frame = 0
	log.Printf("[MachineSystem] Machine %d selected (%d components)", number, len(s.machine.Components()))
}

// MachineNumber 返回当前机器编号
func (s *MachineSystem) MachineNumber() int {
	return s.machineNumber
}

// Machine 返回当前机器
func (s *MachineSystem) Machine() *machine.Machine {
	return s.machine
}

// SetLocation 设置绘制锚点
func (s *MachineSystem) SetLocation(x, y float64) {
	s.locationX = x
	s.locationY = y
}

// Location 返回绘制锚点
func (s *MachineSystem) Location() (x, y float64) {
	return s.locationX, s.locationY
}

// SetFrameRate 设置帧率
//
// 只影响之后的 SetMachineFrame 调用，已经推进的时间不会重新缩放。
// 非正值被忽略。
func (s *MachineSystem) SetFrameRate(rate float64) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		log.Printf("[MachineSystem] Ignoring invalid frame rate %v", rate)
		return
	}
	s.frameRate = rate
}

// FrameRate 返回帧率
func (s *MachineSystem) FrameRate() float64 {
	return s.frameRate
}

// Frame 返回当前帧号
func (s *MachineSystem) Frame() int {
	return s.frame
}

// SetMachineFrame 把机器推进到指定帧
//
// 目标帧早于当前帧（包括负数）时先重置到第 0 帧；
// 之后逐帧推进 1/frameRate 秒，并把机器时间校正为 frame/frameRate。
func (s *MachineSystem) SetMachineFrame(frame int) {
	if frame < s.frame {
		s.Reset()
	}

	for s.frame < frame {
		s.frame++
		time := float64(s.frame) / s.frameRate
		s.machine.Advance(1.0 / s.frameRate)
		s.machine.SetTime(time)
	}
}

// MachineTime 返回 frame/frameRate
func (s *MachineSystem) MachineTime() float64 {
	return float64(s.frame) / s.frameRate
}

// Reset 帧号和时间归零并重置机器
func (s *MachineSystem) Reset() {
	s.frame = 0
	if s.machine != nil {
		s.machine.Reset()
	}
}

// DrawMachine 把机器绘制到锚点位置
func (s *MachineSystem) DrawMachine(gc graphics.Context) {
	if s.machine == nil {
		return
	}
	gc.PushState()
	gc.Translate(s.locationX, s.locationY)
	s.machine.Draw(gc)
	gc.PopState()
}

// HitTest 点是否落在锚点周围 ±HitTestHalfSize 的范围内
func (s *MachineSystem) HitTest(x, y float64) bool {
	dx := math.Abs(x - s.locationX)
	dy := math.Abs(y - s.locationY)
	return dx < HitTestHalfSize && dy < HitTestHalfSize
}
