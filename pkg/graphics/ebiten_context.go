package graphics

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ellipseSegments 椭圆近似多边形的边数
const ellipseSegments = 32

var (
	whiteImageOnce sync.Once
	whiteSubImage  *ebiten.Image
)

// solidSource 返回用于 DrawTriangles 的 1x1 白色纹理
func solidSource() *ebiten.Image {
	whiteImageOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// EbitenContext 基于 Ebiten 的绘制表面
//
// 变换栈使用 ebiten.GeoM 维护；所有几何图形在 CPU 侧完成坐标变换后
// 通过 vector.Path 三角化，再用 DrawTriangles 绘制，因此缩放和平移对
// 矩形、椭圆、曲线的效果一致。
type EbitenContext struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
}

// NewEbitenContext 创建绘制到 dst 的上下文
func NewEbitenContext(dst *ebiten.Image) *EbitenContext {
	return &EbitenContext{dst: dst}
}

// PushState 保存当前变换
func (c *EbitenContext) PushState() {
	c.stack = append(c.stack, c.geo)
}

// PopState 恢复变换；栈为空时忽略
func (c *EbitenContext) PopState() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate 平移局部坐标系
func (c *EbitenContext) Translate(dx, dy float64) {
	var local ebiten.GeoM
	local.Translate(dx, dy)
	local.Concat(c.geo)
	c.geo = local
}

// Scale 缩放局部坐标系
func (c *EbitenContext) Scale(sx, sy float64) {
	var local ebiten.GeoM
	local.Scale(sx, sy)
	local.Concat(c.geo)
	c.geo = local
}

// FillRect 填充矩形
func (c *EbitenContext) FillRect(x, y, w, h float64, clr color.Color) {
	c.fillPolygon([][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, clr)
}

// StrokeRect 描边矩形
func (c *EbitenContext) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	var p Path
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.LineTo(x, y)
	c.StrokePath(&p, width, clr)
}

// FillEllipse 填充椭圆
func (c *EbitenContext) FillEllipse(x, y, w, h float64, clr color.Color) {
	cx, cy := x+w/2, y+h/2
	pts := make([][2]float64, 0, ellipseSegments)
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts = append(pts, [2]float64{cx + w/2*math.Cos(a), cy + h/2*math.Sin(a)})
	}
	c.fillPolygon(pts, clr)
}

// StrokeLine 绘制线段
func (c *EbitenContext) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	var p Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	c.StrokePath(&p, width, clr)
}

// StrokePath 描边路径
func (c *EbitenContext) StrokePath(p *Path, width float64, clr color.Color) {
	if p == nil || len(p.segments) == 0 {
		return
	}
	var vp vector.Path
	c.appendPath(&vp, p)

	op := &vector.StrokeOptions{
		Width:    float32(width * c.lineScale()),
		LineJoin: vector.LineJoinRound,
	}
	vs, is := vp.AppendVerticesAndIndicesForStroke(nil, nil, op)
	c.drawTriangles(vs, is, clr)
}

// DrawImage 把图片拉伸绘制到目标矩形
func (c *EbitenContext) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.geo)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// fillPolygon 变换并填充凸多边形
func (c *EbitenContext) fillPolygon(pts [][2]float64, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var vp vector.Path
	for i, pt := range pts {
		x, y := c.geo.Apply(pt[0], pt[1])
		if i == 0 {
			vp.MoveTo(float32(x), float32(y))
			continue
		}
		vp.LineTo(float32(x), float32(y))
	}
	vp.Close()

	vs, is := vp.AppendVerticesAndIndicesForFilling(nil, nil)
	c.drawTriangles(vs, is, clr)
}

// appendPath 把 Path 的控制点变换到屏幕坐标（仿射变换保持贝塞尔曲线形状）
func (c *EbitenContext) appendPath(vp *vector.Path, p *Path) {
	for _, seg := range p.segments {
		switch seg.Kind {
		case SegmentMoveTo:
			x, y := c.geo.Apply(seg.Points[0][0], seg.Points[0][1])
			vp.MoveTo(float32(x), float32(y))
		case SegmentLineTo:
			x, y := c.geo.Apply(seg.Points[0][0], seg.Points[0][1])
			vp.LineTo(float32(x), float32(y))
		case SegmentCubicTo:
			x1, y1 := c.geo.Apply(seg.Points[0][0], seg.Points[0][1])
			x2, y2 := c.geo.Apply(seg.Points[1][0], seg.Points[1][1])
			x3, y3 := c.geo.Apply(seg.Points[2][0], seg.Points[2][1])
			vp.CubicTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
		}
	}
}

// lineScale 当前变换下线宽的近似缩放系数
func (c *EbitenContext) lineScale() float64 {
	a := c.geo.Element(0, 0)
	b := c.geo.Element(0, 1)
	cc := c.geo.Element(1, 0)
	d := c.geo.Element(1, 1)
	return math.Sqrt(math.Abs(a*d - b*cc))
}

// drawTriangles 使用纯色绘制三角形网格
func (c *EbitenContext) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	if len(vs) == 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	c.dst.DrawTriangles(vs, is, solidSource(), op)
}
