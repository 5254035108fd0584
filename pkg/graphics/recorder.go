package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Op 一次被记录的绘制调用
type Op struct {
	Name  string      // 方法名，如 "FillRect"
	Args  []float64   // 局部坐标下的参数
	Color color.Color // 绘制颜色（DrawImage 为 nil）
	// ScreenX/ScreenY 第一个坐标参数经过当前变换后的屏幕坐标
	ScreenX, ScreenY float64
}

// Recorder 记录绘制调用的 Context 实现
//
// 不接触 GPU，用于测试渲染顺序、平移是否正确以及 Push/Pop 是否配对。
type Recorder struct {
	ops      []Op
	geo      ebiten.GeoM
	stack    []ebiten.GeoM
	maxDepth int
}

// NewRecorder 创建空的记录器
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Ops 返回已记录的绘制调用
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count 统计指定名称的调用次数
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Depth 当前未弹出的 PushState 数量
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// MaxDepth 记录期间出现过的最大栈深度
func (r *Recorder) MaxDepth() int {
	return r.maxDepth
}

// Reset 清空记录和变换
func (r *Recorder) Reset() {
	r.ops = nil
	r.stack = nil
	r.geo = ebiten.GeoM{}
	r.maxDepth = 0
}

func (r *Recorder) PushState() {
	r.stack = append(r.stack, r.geo)
	if len(r.stack) > r.maxDepth {
		r.maxDepth = len(r.stack)
	}
}

func (r *Recorder) PopState() {
	if len(r.stack) == 0 {
		return
	}
	r.geo = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(dx, dy float64) {
	var local ebiten.GeoM
	local.Translate(dx, dy)
	local.Concat(r.geo)
	r.geo = local
}

func (r *Recorder) Scale(sx, sy float64) {
	var local ebiten.GeoM
	local.Scale(sx, sy)
	local.Concat(r.geo)
	r.geo = local
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.record("FillRect", clr, x, y, w, h)
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	r.record("StrokeRect", clr, x, y, w, h, width)
}

func (r *Recorder) FillEllipse(x, y, w, h float64, clr color.Color) {
	r.record("FillEllipse", clr, x, y, w, h)
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	r.record("StrokeLine", clr, x1, y1, x2, y2, width)
}

func (r *Recorder) StrokePath(p *Path, width float64, clr color.Color) {
	if p == nil || len(p.segments) == 0 {
		return
	}
	start := p.segments[0].Points[0]
	r.record("StrokePath", clr, start[0], start[1], float64(len(p.segments)), width)
}

func (r *Recorder) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	r.record("DrawImage", nil, x, y, w, h)
}

func (r *Recorder) record(name string, clr color.Color, args ...float64) {
	op := Op{Name: name, Args: args, Color: clr}
	if len(args) >= 2 {
		op.ScreenX, op.ScreenY = r.geo.Apply(args[0], args[1])
	}
	r.ops = append(r.ops, op)
}
