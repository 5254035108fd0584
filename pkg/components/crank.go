package components

import (
	"image/color"
	"math"

	"github.com/decker502/machinesim/pkg/graphics"
)

const (
	// DefaultCrankSpeed 默认转速（圈/秒）
	DefaultCrankSpeed = 1.0
	// CrankArmLength 曲柄臂长度
	CrankArmLength = 40
	// CrankArmWidth 曲柄臂宽度
	CrankArmWidth = 6
	// crankHubLength 曲柄轮毂长度
	crankHubLength = 10
	// crankHubDiameter 曲柄轮毂直径
	crankHubDiameter = 14
	// crankHandleLength 手柄长度
	crankHandleLength = 20
	// crankHandleDiameter 手柄直径
	crankHandleDiameter = 8
)

// CrankColor 曲柄颜色
var CrankColor = color.RGBA{R: 180, G: 40, B: 40, A: 255}

// Crank 曲柄，整台机器的动力来源
//
// 转速恒定：rotation = speed * Time()。每次 Advance 都把新的旋转推送给下游。
type Crank struct {
	Base

	speed    float64
	rotation float64
	source   RotationSource

	hub    graphics.Cylinder
	handle graphics.Cylinder
}

// NewCrank 创建转速为 speed（圈/秒）的曲柄，非正值使用默认转速
func NewCrank(speed float64) *Crank {
	if speed <= 0 {
		speed = DefaultCrankSpeed
	}
	c := &Crank{speed: speed}
	c.hub.SetColor(CrankColor)
	c.hub.SetSize(crankHubDiameter, crankHubLength)
	c.handle.SetColor(CrankColor)
	c.handle.SetSize(crankHandleDiameter, crankHandleLength)
	return c
}

// Source 返回曲柄的旋转源
func (c *Crank) Source() *RotationSource {
	return &c.source
}

// Speed 返回转速（圈/秒）
func (c *Crank) Speed() float64 {
	return c.speed
}

// Rotation 返回当前旋转（圈）
func (c *Crank) Rotation() float64 {
	return c.rotation
}

// Advance 推进时间并驱动传动链
func (c *Crank) Advance(delta float64) {
	c.Base.Advance(delta)
	c.rotation = c.speed * c.Time()
	c.source.SetRotation(c.rotation)
}

// Reset 回到静止状态（不向下游推送，下游部件各自重置）
func (c *Crank) Reset() {
	c.Base.Reset()
	c.rotation = 0
	c.source.reset()
}

// Draw 侧视绘制曲柄：臂在垂直于轴的平面内转动，投影长度随 cos 变化
func (c *Crank) Draw(gc graphics.Context) {
	gc.PushState()
	gc.Translate(c.X(), c.Y())

	c.hub.Draw(gc, 0, 0, c.rotation)

	armX := crankHubLength / 2.0
	endY := -CrankArmLength * math.Cos(c.rotation*2*math.Pi)
	gc.StrokeLine(armX, 0, armX, endY, CrankArmWidth, CrankColor)
	c.handle.Draw(gc, armX, endY, 0)

	gc.PopState()
}

// State 状态快照
func (c *Crank) State() State {
	return c.state("crank", map[string]float64{
		"rotation": c.rotation,
		"speed":    c.speed,
	})
}
