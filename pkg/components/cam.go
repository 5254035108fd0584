package components

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/machinesim/pkg/graphics"
)

const (
	// CamWidth 凸轮在屏幕上的宽度
	CamWidth = 17
	// CamDiameter 凸轮直径
	CamDiameter = 60
	// HoleSize 凸轮上孔的大小
	HoleSize = 8
	// KeyImageSize 钥匙图片大小
	KeyImageSize = 20
	// KeyDrop 钥匙落入孔中的距离
	KeyDrop = 10
	// KeyFallRotation 钥匙下落的旋转阈值（圈）
	KeyFallRotation = 1.0

	// holeStartInset 孔的起点距底边的距离
	holeStartInset = 10
	// holeShrinkStart 孔开始收缩的旋转值
	holeShrinkStart = 0.9
	// holeMinHeight 孔收缩后的最小高度
	holeMinHeight = 2.0
)

// 凸轮外观
var (
	CamColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	HoleColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	KeyColor  = color.RGBA{R: 218, G: 165, B: 32, A: 255}
)

// Cam 凸轮
//
// 孔随旋转从底部移到顶部；旋转首次达到 1.0 时钥匙落入孔中，
// 按注册顺序通知所有 KeyFallListener，每次 Reset 之间最多触发一次（边沿触发）。
type Cam struct {
	Base

	rotation   float64
	keyDropped bool
	listeners  []KeyFallListener
	key        graphics.Polygon
}

// NewCam 创建凸轮，keyImage 为 nil 时钥匙用纯色绘制
func NewCam(keyImage *ebiten.Image) *Cam {
	c := &Cam{}
	c.key.Rectangle(-KeyImageSize/2, 0, KeyImageSize, KeyImageSize)
	c.key.SetImage(keyImage)
	c.key.SetColor(KeyColor)
	return c
}

// AddKeyFallListener 注册钥匙下落监听者
func (c *Cam) AddKeyFallListener(listener KeyFallListener) {
	c.listeners = append(c.listeners, listener)
}

// Rotation 返回当前旋转（圈）
func (c *Cam) Rotation() float64 {
	return c.rotation
}

// KeyDropped 钥匙是否已经落下
func (c *Cam) KeyDropped() bool {
	return c.keyDropped
}

// SetRotation 设置旋转，首次达到阈值时触发钥匙下落
func (c *Cam) SetRotation(rotation float64) {
	c.rotation = rotation
	if c.rotation >= KeyFallRotation && !c.keyDropped {
		c.keyDropped = true
		for _, listener := range c.listeners {
			listener.KeyFall()
		}
	}
}

// Reset 清零旋转并重新装好钥匙
func (c *Cam) Reset() {
	c.Base.Reset()
	c.rotation = 0
	c.keyDropped = false
}

// Draw 绘制钥匙、凸轮和孔
//
// 孔的位置和大小只由 rotation 决定；钥匙落下后下移 KeyDrop。
func (c *Cam) Draw(gc graphics.Context) {
	gc.PushState()
	gc.Translate(c.X(), c.Y())

	drop := 0.0
	if c.keyDropped {
		drop = KeyDrop
	}
	c.key.Draw(gc, 0, -CamDiameter/2+drop)

	gc.FillRect(-CamWidth/2.0, -CamDiameter/2, CamWidth, CamDiameter, CamColor)
	gc.StrokeRect(-CamWidth/2.0, -CamDiameter/2, CamWidth, CamDiameter, 1, HoleColor)

	if y, h, ok := c.hole(); ok {
		gc.FillEllipse(-HoleSize/2, y, HoleSize, h, HoleColor)
	}

	gc.PopState()
}

// hole 计算孔的纵向位置和高度，rotation 超过 1 后孔转到背面不再可见
func (c *Cam) hole() (y, height float64, visible bool) {
	if c.rotation > KeyFallRotation {
		return 0, 0, false
	}
	startY := CamDiameter/2.0 - holeStartInset
	endY := -CamDiameter / 2.0
	y = startY - c.rotation*(startY-endY)

	height = HoleSize
	if c.rotation > holeShrinkStart {
		progress := (c.rotation - holeShrinkStart) * 10
		height = math.Max(HoleSize*(1.0-progress), holeMinHeight)
	}
	return y, height, true
}

// State 状态快照
func (c *Cam) State() State {
	return c.state("cam", map[string]float64{
		"rotation":   c.rotation,
		"keyDropped": boolValue(c.keyDropped),
	})
}
