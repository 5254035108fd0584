// Package app 提供机械装置演示的 ebiten 宿主
//
// 该包把场景配置、时间轴、机器适配器和存档组装成一个 ebiten.Game，
// main.go 只负责解析参数和启动游戏循环。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/machinesim/pkg/config"
	"github.com/decker502/machinesim/pkg/entities"
	"github.com/decker502/machinesim/pkg/game"
	"github.com/decker502/machinesim/pkg/graphics"
	"github.com/decker502/machinesim/pkg/systems"
)

// 画面颜色
var (
	BackgroundColor = color.RGBA{R: 240, G: 240, B: 230, A: 255}
	SelectionColor  = color.RGBA{R: 30, G: 110, B: 220, A: 255}
)

// selectionLineWidth 选中框线宽
const selectionLineWidth = 2

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Scene 场景配置
	Scene *config.MachinesConfig
	// Images 贴图加载器，可为 nil（纯色绘制）
	Images entities.ImageLoader
	// Saves 存档管理器，可为 nil（不保存）
	Saves *game.SaveManager
}

// Command 用户操作
type Command int

const (
	CommandTogglePlay Command = iota
	CommandStepForward
	CommandStepBack
	CommandRewind
	CommandSelectNext
	CommandChooseMachine1
	CommandChooseMachine2
	CommandStartEarlier
	CommandStartLater
	CommandSave
)

// keyBindings 按键到操作的映射
var keyBindings = []struct {
	key     ebiten.Key
	command Command
}{
	{ebiten.KeySpace, CommandTogglePlay},
	{ebiten.KeyArrowRight, CommandStepForward},
	{ebiten.KeyArrowLeft, CommandStepBack},
	{ebiten.KeyHome, CommandRewind},
	{ebiten.KeyTab, CommandSelectNext},
	{ebiten.KeyDigit1, CommandChooseMachine1},
	{ebiten.KeyDigit2, CommandChooseMachine2},
	{ebiten.KeyBracketLeft, CommandStartEarlier},
	{ebiten.KeyBracketRight, CommandStartLater},
	{ebiten.KeyS, CommandSave},
}

const helpText = "Space play/pause  <- -> step  Home rewind  Tab select  1/2 machine  [ ] start  S save"

// App 机械装置演示，实现 ebiten.Game 接口
type App struct {
	scene    *config.MachinesConfig
	timeline *Timeline
	adapters []*game.MachineAdapter
	selected int
	saves    *game.SaveManager
	message  string
	verbose  bool
}

// NewApp 创建并初始化应用
//
// 按场景配置创建每台机器，存在存档时用存档覆盖机器编号和开始帧。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Scene == nil {
		return nil, fmt.Errorf("app needs a scene config")
	}

	a := &App{
		scene:    cfg.Scene,
		timeline: NewTimeline(cfg.Scene.FrameRate, cfg.Scene.NumFrames),
		saves:    cfg.Saves,
		verbose:  cfg.Verbose,
	}

	for _, placed := range cfg.Scene.Machines {
		a.adapters = append(a.adapters, game.NewMachineAdapterFromConfig(placed, cfg.Scene.FrameRate, cfg.Images))
	}
	log.Printf("[App] %d machines placed", len(a.adapters))

	if a.saves != nil {
		restored, err := a.saves.RestoreAdapters(a.adapters)
		if err != nil {
			return nil, fmt.Errorf("failed to restore machines: %w", err)
		}
		log.Printf("[App] %d machines restored from save", restored)
	}

	a.syncFrame()
	return a, nil
}

// Timeline 返回时间轴
func (a *App) Timeline() *Timeline {
	return a.timeline
}

// Adapters 返回场景中的机器
func (a *App) Adapters() []*game.MachineAdapter {
	return a.adapters
}

// Selected 返回当前选中的机器，没有机器时返回 nil
func (a *App) Selected() *game.MachineAdapter {
	if a.selected < 0 || a.selected >= len(a.adapters) {
		return nil
	}
	return a.adapters[a.selected]
}

// Message 返回最近一条状态消息
func (a *App) Message() string {
	return a.message
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Update 更新逻辑，每个 tick 调用一次
func (a *App) Update() error {
	for _, binding := range keyBindings {
		if inpututil.IsKeyJustPressed(binding.key) {
			a.Apply(binding.command)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.SelectAt(float64(x), float64(y))
	}

	a.advance(1.0 / float64(ebiten.TPS()))
	return nil
}

// advance 推进时间轴，帧号变化时同步所有机器
func (a *App) advance(dt float64) {
	if a.timeline.Tick(dt) {
		a.syncFrame()
	}
}

// syncFrame 把时间轴帧号下发给所有机器
func (a *App) syncFrame() {
	frame := a.timeline.Frame()
	for _, adapter := range a.adapters {
		adapter.SetFrame(frame)
	}
}

// Apply 执行一次用户操作
func (a *App) Apply(command Command) {
	switch command {
	case CommandTogglePlay:
		a.timeline.Toggle()
	case CommandStepForward:
		a.timeline.Pause()
		a.timeline.Step(1)
		a.syncFrame()
	case CommandStepBack:
		a.timeline.Pause()
		a.timeline.Step(-1)
		a.syncFrame()
	case CommandRewind:
		a.timeline.Rewind()
		a.syncFrame()
	case CommandSelectNext:
		if len(a.adapters) > 0 {
			a.selected = (a.selected + 1) % len(a.adapters)
		}
	case CommandChooseMachine1, CommandChooseMachine2:
		if sel := a.Selected(); sel != nil {
			number := 1
			if command == CommandChooseMachine2 {
				number = 2
			}
			sel.SetMachineNumber(number)
		}
	case CommandStartEarlier:
		if sel := a.Selected(); sel != nil {
			sel.SetStartFrame(sel.StartFrame() - 1)
		}
	case CommandStartLater:
		if sel := a.Selected(); sel != nil {
			sel.SetStartFrame(sel.StartFrame() + 1)
		}
	case CommandSave:
		a.save()
	}
}

// SelectAt 选中包含该点的机器，返回是否命中
func (a *App) SelectAt(x, y float64) bool {
	for i, adapter := range a.adapters {
		if adapter.HitTest(x, y) {
			a.selected = i
			return true
		}
	}
	return false
}

func (a *App) save() {
	if a.saves == nil {
		a.message = "saving disabled"
		return
	}
	if err := a.saves.SaveAdapters(a.adapters); err != nil {
		log.Printf("[App] Save failed: %v", err)
		a.message = "save failed"
		return
	}
	a.message = fmt.Sprintf("saved %d machines", len(a.adapters))
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	a.drawScene(graphics.NewEbitenContext(screen))
	ebitenutil.DebugPrint(screen, a.statusText())
}

// drawScene 按配置顺序绘制所有机器，再绘制选中框
func (a *App) drawScene(gc graphics.Context) {
	for _, adapter := range a.adapters {
		adapter.Draw(gc)
	}

	if sel := a.Selected(); sel != nil {
		x, y := sel.Location()
		size := float64(systems.HitTestHalfSize * 2)
		gc.StrokeRect(x-systems.HitTestHalfSize, y-systems.HitTestHalfSize, size, size, selectionLineWidth, SelectionColor)
	}
}

// statusText 左上角的状态文字
func (a *App) statusText() string {
	var b strings.Builder
	state := "paused"
	if a.timeline.Playing() {
		state = "playing"
	}
	fmt.Fprintf(&b, "Frame %d/%d  %.2fs  %s\n", a.timeline.Frame(), a.timeline.NumFrames(), a.timeline.Time(), state)

	if sel := a.Selected(); sel != nil {
		fmt.Fprintf(&b, "%s: machine %d, start frame %d, machine frame %d\n",
			sel.Name(), sel.MachineNumber(), sel.StartFrame(), sel.MachineFrame())
	}
	b.WriteString(helpText)
	if a.message != "" {
		b.WriteString("\n")
		b.WriteString(a.message)
	}
	return b.String()
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.scene.Window.Width, a.scene.Window.Height
}
