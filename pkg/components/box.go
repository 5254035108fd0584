package components

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/machinesim/pkg/graphics"
	"github.com/decker502/machinesim/pkg/utils"
)

const (
	// LidOpeningTime 开盖所需时间（秒）
	LidOpeningTime = 0.25
	// LidOpenAngle 盖子完全打开时的角度
	LidOpenAngle = math.Pi / 2
	// LidZeroAngleScale 盖子角度为 0 时的纵向缩放
	LidZeroAngleScale = 0.02
)

// 盒子无贴图时的颜色
var (
	BoxBackgroundColor = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	BoxForegroundColor = color.RGBA{R: 181, G: 121, B: 62, A: 255}
	BoxLidColor        = color.RGBA{R: 160, G: 105, B: 50, A: 255}
)

// BoxImages 盒子的三张贴图，任意一张为 nil 时该部分使用纯色
type BoxImages struct {
	Background *ebiten.Image
	Foreground *ebiten.Image
	Lid        *ebiten.Image
}

// Box 装着 Sparty 的盒子
//
// 收到 KeyFall 后盖子以 LidOpenAngle/LidOpeningTime 的角速度打开，
// 到达 LidOpenAngle 后保持不变。正面在前景阶段绘制，遮住盒子里的弹簧。
type Box struct {
	Base

	boxSize  float64
	lidSize  float64
	open     bool
	lidAngle float64

	background graphics.Polygon
	front      graphics.Polygon
	lid        graphics.Polygon
}

// NewBox 创建盒子
//
// 参数：
//   - boxSize: 盒子边长（不含盖子）
//   - lidSize: 盖子高度
//   - images: 贴图，可为零值
func NewBox(boxSize, lidSize float64, images BoxImages) *Box {
	b := &Box{boxSize: boxSize, lidSize: lidSize}

	b.background.Rectangle(-boxSize/2, 0, boxSize, boxSize)
	b.background.SetImage(images.Background)
	b.background.SetColor(BoxBackgroundColor)

	b.front.Rectangle(-boxSize/2, 0, boxSize, boxSize)
	b.front.SetImage(images.Foreground)
	b.front.SetColor(BoxForegroundColor)

	b.lid.Rectangle(-boxSize/2, 0, boxSize, lidSize)
	b.lid.SetImage(images.Lid)
	b.lid.SetColor(BoxLidColor)
	return b
}

// KeyFall 开始开盖
func (b *Box) KeyFall() {
	b.open = true
}

// IsOpen 是否已收到开盖信号
func (b *Box) IsOpen() bool {
	return b.open
}

// LidAngle 返回盖子角度（弧度）
func (b *Box) LidAngle() float64 {
	return b.lidAngle
}

// Phase 返回动画阶段
func (b *Box) Phase() Phase {
	return phaseOf(b.open, b.lidAngle, LidOpenAngle)
}

// Advance 推进开盖动画
func (b *Box) Advance(delta float64) {
	b.Base.Advance(delta)
	if b.open && b.lidAngle < LidOpenAngle {
		b.lidAngle = openingStep(b.lidAngle, LidOpenAngle, delta, LidOpeningTime)
	}
}

// Reset 合上盖子
func (b *Box) Reset() {
	b.Base.Reset()
	b.lidAngle = 0
	b.open = false
}

// Draw 绘制盒子背面和盖子
//
// 盖子以盒子顶边为底，纵向缩放 lerp(LidZeroAngleScale, 1, sin(angle))。
func (b *Box) Draw(gc graphics.Context) {
	gc.PushState()
	b.background.Draw(gc, b.X(), b.Y())

	scale := utils.Lerp(LidZeroAngleScale, 1.0, math.Sin(b.lidAngle))
	gc.PushState()
	gc.Translate(b.X(), b.Y()-b.boxSize)
	gc.Scale(1, scale)
	b.lid.Draw(gc, 0, 0)
	gc.PopState()

	gc.PopState()
}

// DrawForeground 绘制盒子正面
func (b *Box) DrawForeground(gc graphics.Context) {
	gc.PushState()
	gc.Translate(b.X(), b.Y())
	b.front.Draw(gc, 0, 0)
	gc.PopState()
}

// State 状态快照
func (b *Box) State() State {
	return b.state("box", map[string]float64{
		"open":     boolValue(b.open),
		"lidAngle": b.lidAngle,
	})
}
