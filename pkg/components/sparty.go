package components

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/machinesim/pkg/graphics"
	"github.com/decker502/machinesim/pkg/utils"
)

const (
	// SpartyPopupTime 弹出所需时间（秒）
	SpartyPopupTime = 0.25
	// SpartyOpenAngle 完全弹出时的角度
	SpartyOpenAngle = math.Pi / 2
	// SpringWireSize 弹簧线宽
	SpringWireSize = 2
	// SpringCompressedRatio 压缩时弹簧长度占全长的比例
	SpringCompressedRatio = 0.2

	// BounceHorizontalAmplitude 弹出完成时的水平晃动幅度
	BounceHorizontalAmplitude = 20
	// BounceVerticalAmplitude 弹出完成时的垂直晃动幅度
	BounceVerticalAmplitude = 30
	// BounceDecay 每次 Advance 的幅度衰减系数
	BounceDecay = 0.95
	// BounceFrequency 晃动角频率
	BounceFrequency = 15
)

// 颜色
var (
	SpringColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	SpartyColor = color.RGBA{R: 24, G: 69, B: 59, A: 255}
)

// Sparty 弹簧上的 Sparty
//
// 收到 KeyFall 后弹出：弹出角度按 SpartyOpenAngle/SpartyPopupTime 增长，
// 弹簧长度 = 压缩长度 + sin(角度)*(全长-压缩长度)。完全弹出的那一刻设置
// 晃动幅度，之后每次 Advance 按 BounceDecay 几何衰减。晃动偏移只由本地
// 时间和幅度决定，因此从 0 重放可以得到完全相同的画面。
type Sparty struct {
	Base

	size             float64
	fullLength       float64
	compressedLength float64
	springLength     float64
	springWidth      float64
	numLinks         int

	popped      bool
	popupAngle  float64
	horizBounce float64
	vertBounce  float64

	body graphics.Polygon
}

// NewSparty 创建 Sparty
//
// 参数：
//   - image: Sparty 贴图，可为 nil
//   - size: 绘制尺寸（宽高）
//   - springLength: 弹簧完全伸展时的长度
//   - springWidth: 弹簧宽度
//   - numLinks: 弹簧圈数
func NewSparty(image *ebiten.Image, size, springLength, springWidth float64, numLinks int) *Sparty {
	if numLinks < 1 {
		numLinks = 1
	}
	compressed := springLength * SpringCompressedRatio
	s := &Sparty{
		size:             size,
		fullLength:       springLength,
		compressedLength: compressed,
		springLength:     compressed,
		springWidth:      springWidth,
		numLinks:         numLinks,
	}
	s.body.Rectangle(-size/2, compressed/2, size, size)
	s.body.SetImage(image)
	s.body.SetColor(SpartyColor)
	return s
}

// KeyFall 开始弹出
func (s *Sparty) KeyFall() {
	s.popped = true
}

// Popped 是否已收到弹出信号
func (s *Sparty) Popped() bool {
	return s.popped
}

// PopupAngle 返回弹出角度（弧度）
func (s *Sparty) PopupAngle() float64 {
	return s.popupAngle
}

// SpringLength 返回当前弹簧长度
func (s *Sparty) SpringLength() float64 {
	return s.springLength
}

// CompressedLength 返回压缩时的弹簧长度
func (s *Sparty) CompressedLength() float64 {
	return s.compressedLength
}

// Bounce 返回当前水平和垂直晃动幅度
func (s *Sparty) Bounce() (horizontal, vertical float64) {
	return s.horizBounce, s.vertBounce
}

// Phase 返回动画阶段
func (s *Sparty) Phase() Phase {
	return phaseOf(s.popped, s.popupAngle, SpartyOpenAngle)
}

// Advance 推进弹出和晃动
func (s *Sparty) Advance(delta float64) {
	s.Base.Advance(delta)

	if s.popped && s.popupAngle < SpartyOpenAngle {
		s.popupAngle = openingStep(s.popupAngle, SpartyOpenAngle, delta, SpartyPopupTime)
		if s.popupAngle >= SpartyOpenAngle {
			s.horizBounce = BounceHorizontalAmplitude
			s.vertBounce = BounceVerticalAmplitude
		}
		s.springLength = utils.Lerp(s.compressedLength, s.fullLength, math.Sin(s.popupAngle))
	}

	if s.popupAngle >= SpartyOpenAngle {
		s.horizBounce *= BounceDecay
		s.vertBounce *= BounceDecay
	}
}

// Reset 压回盒子，清除晃动
func (s *Sparty) Reset() {
	s.Base.Reset()
	s.popupAngle = 0
	s.popped = false
	s.springLength = s.compressedLength
	s.horizBounce = 0
	s.vertBounce = 0
}

// bounceOffset 当前晃动偏移
func (s *Sparty) bounceOffset() (dx, dy float64) {
	t := s.Time() * BounceFrequency
	return s.horizBounce * math.Sin(t), s.vertBounce * math.Cos(t)
}

// Draw 绘制弹簧和 Sparty
func (s *Sparty) Draw(gc graphics.Context) {
	gc.PushState()

	s.drawSpring(gc, s.X(), s.Y())

	height := utils.Lerp(s.compressedLength, s.springLength, math.Sin(s.popupAngle))
	dx, dy := s.bounceOffset()

	gc.PushState()
	gc.Translate(s.X()+dx, s.Y()-height+dy)
	s.body.Draw(gc, 0, 0)
	gc.PopState()

	gc.PopState()
}

// drawSpring 用交替的贝塞尔曲线绘制弹簧，越靠上的圈晃动越明显
func (s *Sparty) drawSpring(gc graphics.Context, x, y float64) {
	dx, dy := s.bounceOffset()
	linkLength := s.springLength / float64(s.numLinks)
	xR := x + s.springWidth/2
	xL := x - s.springWidth/2

	var path graphics.Path
	y1 := y
	path.MoveTo(x, y1)
	for i := 0; i < s.numLinks; i++ {
		ratio := float64(i) / float64(s.numLinks)
		bx := dx * ratio
		by := dy * ratio

		y2 := y1 - linkLength
		y3 := y2 - linkLength/2

		path.CubicTo(xR+bx, y1, xR+bx, y3+by, x+bx, y3+by)
		path.CubicTo(xL+bx, y3+by, xL+bx, y2+by, x+bx, y2+by)
		y1 = y2
	}
	gc.StrokePath(&path, SpringWireSize, SpringColor)
}

// State 状态快照
func (s *Sparty) State() State {
	return s.state("sparty", map[string]float64{
		"popped":       boolValue(s.popped),
		"popupAngle":   s.popupAngle,
		"springLength": s.springLength,
		"bounceX":      s.horizBounce,
		"bounceY":      s.vertBounce,
	})
}
