package graphics

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// outlineColor 图形轮廓颜色
var outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Cylinder 侧视的旋转圆柱体
//
// 轴线水平，从 x 向右延伸 Length，纵向直径为 Diameter，以 y 为中心。
// 表面的条纹随旋转角移动，用来表现转动；条纹只绘制朝向观察者的半圈。
type Cylinder struct {
	Color     color.Color
	LineColor color.Color
	LineWidth float64
	NumLines  int
	Diameter  float64
	Length    float64
}

// SetColor 设置圆柱体颜色
func (c *Cylinder) SetColor(clr color.Color) {
	c.Color = clr
}

// SetSize 设置直径和长度
func (c *Cylinder) SetSize(diameter, length float64) {
	c.Diameter = diameter
	c.Length = length
}

// SetLines 设置条纹
func (c *Cylinder) SetLines(clr color.Color, width float64, num int) {
	c.LineColor = clr
	c.LineWidth = width
	c.NumLines = num
}

// Draw 在 (x, y) 绘制圆柱体，rotation 单位为圈
func (c *Cylinder) Draw(gc Context, x, y, rotation float64) {
	if c.Length <= 0 || c.Diameter <= 0 {
		return
	}
	top := y - c.Diameter/2
	if c.Color != nil {
		gc.FillRect(x, top, c.Length, c.Diameter, c.Color)
	}

	if c.NumLines > 0 && c.LineColor != nil {
		for i := 0; i < c.NumLines; i++ {
			a := (rotation + float64(i)/float64(c.NumLines)) * 2 * math.Pi
			if math.Sin(a) <= 0 {
				continue
			}
			ly := y - c.Diameter/2*math.Cos(a)
			gc.StrokeLine(x, ly, x+c.Length, ly, c.LineWidth, c.LineColor)
		}
	}

	gc.StrokeRect(x, top, c.Length, c.Diameter, 1, outlineColor)
}

// Polygon 可贴图的矩形
//
// 矩形以 (X, Y) 为左下角向上延伸，这样部件可以把底边放在自己的位置上。
// 有图片时绘制图片，否则用纯色填充。
type Polygon struct {
	X, Y  float64
	W, H  float64
	Color color.Color
	Image *ebiten.Image
}

// Rectangle 设置矩形（左下角 x, y）
func (p *Polygon) Rectangle(x, y, w, h float64) {
	p.X, p.Y, p.W, p.H = x, y, w, h
}

// SetImage 设置贴图，nil 表示使用纯色
func (p *Polygon) SetImage(img *ebiten.Image) {
	p.Image = img
}

// SetColor 设置无贴图时的填充色
func (p *Polygon) SetColor(clr color.Color) {
	p.Color = clr
}

// Draw 以 (x, y) 为原点绘制矩形
func (p *Polygon) Draw(gc Context, x, y float64) {
	left := x + p.X
	top := y + p.Y - p.H
	if p.Image != nil {
		gc.DrawImage(p.Image, left, top, p.W, p.H)
		return
	}
	if p.Color != nil {
		gc.FillRect(left, top, p.W, p.H, p.Color)
	}
	gc.StrokeRect(left, top, p.W, p.H, 1, outlineColor)
}
