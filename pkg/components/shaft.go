package components

import (
	"image/color"

	"github.com/decker502/machinesim/pkg/graphics"
)

// 轴的外观
var (
	ShaftColor     = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	ShaftLineColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

const (
	// ShaftDiameter 轴的直径（像素）
	ShaftDiameter = 7
	// ShaftLinesWidth 轴上条纹宽度
	ShaftLinesWidth = 1
	// ShaftNumLines 轴上条纹数量
	ShaftNumLines = 4
)

// Shaft 轴
// 从上游（曲柄或皮带轮）接收旋转，原样转发给装在轴上的部件。
type Shaft struct {
	Base

	rod      graphics.Cylinder
	length   float64
	rotation float64
	source   RotationSource
}

// NewShaft 创建指定长度的轴
func NewShaft(length float64) *Shaft {
	s := &Shaft{length: length}
	s.rod.SetColor(ShaftColor)
	s.rod.SetLines(ShaftLineColor, ShaftLinesWidth, ShaftNumLines)
	s.rod.SetSize(ShaftDiameter, length)
	return s
}

// Source 返回轴的旋转源
func (s *Shaft) Source() *RotationSource {
	return &s.source
}

// Rotation 返回当前旋转（圈）
func (s *Shaft) Rotation() float64 {
	return s.rotation
}

// Length 返回轴长
func (s *Shaft) Length() float64 {
	return s.length
}

// SetRotation 设置旋转并转发给轴上的部件
func (s *Shaft) SetRotation(rotation float64) {
	s.rotation = rotation
	s.source.SetRotation(rotation)
}

// Reset 回到静止状态
func (s *Shaft) Reset() {
	s.Base.Reset()
	s.rotation = 0
	s.source.reset()
}

// Draw 绘制轴
func (s *Shaft) Draw(gc graphics.Context) {
	gc.PushState()
	gc.Translate(s.X(), s.Y())
	s.rod.Draw(gc, 0, 0, s.rotation)
	gc.PopState()
}

// State 状态快照
func (s *Shaft) State() State {
	return s.state("shaft", map[string]float64{
		"rotation": s.rotation,
		"length":   s.length,
	})
}
