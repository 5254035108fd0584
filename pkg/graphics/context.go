// Package graphics 提供机械装置渲染所需的绘制表面抽象
//
// 机械部件不直接依赖具体的渲染后端，而是通过 Context 接口绘制：
//   - EbitenContext：基于 *ebiten.Image 的真实绘制实现
//   - Recorder：记录绘制调用的假表面，用于测试（不需要 GPU）
//
// # 坐标系统
//
// 与 Ebiten 一致，X 向右、Y 向下。Translate/Scale 作用于局部坐标系，
// 即后续绘制先经过最近一次的变换，再经过之前的变换（与画布 API 的语义相同）。
// PushState/PopState 保存和恢复当前变换，必须成对调用。
package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Context 绘制表面
//
// 宿主在每一帧把 Context 传给 MachineSystem，由它逐个部件完成绘制。
// 所有方法都不返回错误：绘制失败不影响模拟状态。
type Context interface {
	// PushState 保存当前变换
	PushState()
	// PopState 恢复最近一次保存的变换
	PopState()
	// Translate 平移局部坐标系
	Translate(dx, dy float64)
	// Scale 缩放局部坐标系
	Scale(sx, sy float64)

	// FillRect 填充矩形（x, y 为左上角）
	FillRect(x, y, w, h float64, clr color.Color)
	// StrokeRect 描边矩形
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	// FillEllipse 填充外接矩形为 (x, y, w, h) 的椭圆
	FillEllipse(x, y, w, h float64, clr color.Color)
	// StrokeLine 绘制线段
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
	// StrokePath 描边路径
	StrokePath(p *Path, width float64, clr color.Color)
	// DrawImage 把图片拉伸绘制到 (x, y, w, h)，img 为 nil 时不绘制
	DrawImage(img *ebiten.Image, x, y, w, h float64)
}

// Path 由直线和三次贝塞尔曲线组成的路径
//
// 只保存控制点，具体的三角化交给 Context 实现。
type Path struct {
	segments []Segment
}

// SegmentKind 路径段类型
type SegmentKind int

const (
	SegmentMoveTo SegmentKind = iota
	SegmentLineTo
	SegmentCubicTo
)

// Segment 路径段
// MoveTo/LineTo 只使用 Points[0]，CubicTo 使用全部三个点（两个控制点 + 终点）
type Segment struct {
	Kind   SegmentKind
	Points [3][2]float64
}

// MoveTo 开始新的子路径
func (p *Path) MoveTo(x, y float64) {
	p.segments = append(p.segments, Segment{Kind: SegmentMoveTo, Points: [3][2]float64{{x, y}}})
}

// LineTo 添加直线段
func (p *Path) LineTo(x, y float64) {
	p.segments = append(p.segments, Segment{Kind: SegmentLineTo, Points: [3][2]float64{{x, y}}})
}

// CubicTo 添加三次贝塞尔曲线段
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.segments = append(p.segments, Segment{
		Kind:   SegmentCubicTo,
		Points: [3][2]float64{{x1, y1}, {x2, y2}, {x3, y3}},
	})
}

// Segments 返回路径段（只读）
func (p *Path) Segments() []Segment {
	return p.segments
}
