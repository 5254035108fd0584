package components

import (
	"image/color"
	"math"

	"github.com/decker502/machinesim/pkg/graphics"
)

const (
	// DefaultPulleyRadius 默认皮带轮半径
	DefaultPulleyRadius = 20
	// PulleyHubWidth 轮毂宽度
	PulleyHubWidth = 3
	// PulleyBeltDepth 皮带嵌入轮子的深度
	PulleyBeltDepth = 3
	// PulleyHubLineWidth 轮毂条纹宽度
	PulleyHubLineWidth = 4
	// PulleyHubLineCountDivisor 条纹数量 = int(直径 / 6)
	PulleyHubLineCountDivisor = 6.0
	// pulleyBodyOffset 轮体相对位置的水平偏移
	pulleyBodyOffset = -2.75
	// beltOverlap 皮带在两个轮子上少绕的长度
	beltOverlap = 10

	beltLineWidth       = 2.0
	beltNumLines        = 5
	pulleyBodyDiameterK = 1.5
)

// 皮带轮外观
var (
	PulleyColor        = color.RGBA{R: 205, G: 250, B: 5, A: 255}
	PulleyHubLineColor = color.RGBA{R: 139, G: 168, B: 7, A: 255}
	BeltColor          = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BeltLineColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Pulley 皮带轮
//
// 既是 RotationSink（从轴接收旋转），也通过自身的 RotationSource 驱动
// 同轴部件。通过 BeltTo 连接的对端皮带轮按半径反比传动：
//
//	peer.rotation = rotation * radius / peer.radius
//
// 皮带连接是有方向的，由工厂负责不构造环路。
type Pulley struct {
	Base

	radius   float64
	rotation float64
	source   RotationSource
	belt     *Pulley

	leftHub   graphics.Cylinder
	rightHub  graphics.Cylinder
	body      graphics.Cylinder
	beltShape graphics.Cylinder
}

// NewPulley 创建指定半径的皮带轮，非正半径使用默认值
func NewPulley(radius float64) *Pulley {
	if radius <= 0 {
		radius = DefaultPulleyRadius
	}
	p := &Pulley{radius: radius}

	numLines := int((radius * 2) / PulleyHubLineCountDivisor)

	p.leftHub.SetColor(PulleyColor)
	p.leftHub.SetSize(radius*2, PulleyHubWidth)
	p.leftHub.SetLines(PulleyHubLineColor, PulleyHubLineWidth, numLines)

	p.rightHub.SetColor(PulleyColor)
	p.rightHub.SetSize(radius*2, PulleyHubWidth)
	p.rightHub.SetLines(PulleyHubLineColor, PulleyHubLineWidth, numLines)

	p.body.SetColor(PulleyColor)
	p.body.SetSize(radius*pulleyBodyDiameterK-PulleyBeltDepth, PulleyHubWidth*3)

	p.beltShape.SetColor(BeltColor)
	p.beltShape.SetLines(BeltLineColor, beltLineWidth, beltNumLines)
	return p
}

// Radius 返回半径
func (p *Pulley) Radius() float64 {
	return p.radius
}

// Rotation 返回当前旋转（圈）
func (p *Pulley) Rotation() float64 {
	return p.rotation
}

// Source 返回同轴部件的旋转源
func (p *Pulley) Source() *RotationSource {
	return &p.source
}

// BeltTo 用皮带驱动另一个皮带轮
func (p *Pulley) BeltTo(peer *Pulley) {
	p.belt = peer
}

// BeltPeer 返回皮带连接的对端，没有时返回 nil
func (p *Pulley) BeltPeer() *Pulley {
	return p.belt
}

// SetRotation 设置旋转
//
// 顺序：保存 -> 推送同轴部件 -> 按半径比驱动皮带对端（递归）
func (p *Pulley) SetRotation(rotation float64) {
	p.rotation = rotation
	p.source.SetRotation(rotation)

	if p.belt != nil {
		p.belt.SetRotation(rotation * p.radius / p.belt.radius)
	}
}

// Reset 回到静止状态
func (p *Pulley) Reset() {
	p.Base.Reset()
	p.rotation = 0
	p.source.reset()
}

// Draw 绘制轮体和两侧轮毂
func (p *Pulley) Draw(gc graphics.Context) {
	gc.PushState()
	gc.Translate(p.X(), p.Y())
	p.body.Draw(gc, pulleyBodyOffset, 0, p.rotation)
	p.leftHub.Draw(gc, -PulleyHubWidth*2, 0, p.rotation)
	p.rightHub.Draw(gc, PulleyHubWidth*2, 0, p.rotation)
	gc.PopState()
}

// DrawForeground 绘制皮带（覆盖在轴和轮子之上）
func (p *Pulley) DrawForeground(gc graphics.Context) {
	if p.belt == nil {
		return
	}

	y1 := p.Y()
	y2 := p.belt.Y()
	height := math.Abs(y2-y1) + p.radius + p.belt.radius - beltOverlap
	belt := p.beltShape
	belt.SetSize(height, PulleyHubWidth*3)

	midY := (y1 + y2) / 2
	offset := (p.radius - p.belt.radius) / 2
	if y1 > y2 {
		midY += offset
	} else {
		midY -= offset
	}

	belt.Draw(gc, p.X()+pulleyBodyOffset, midY, p.rotation)
}

// State 状态快照
func (p *Pulley) State() State {
	return p.state("pulley", map[string]float64{
		"rotation": p.rotation,
		"radius":   p.radius,
	})
}
