package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// 场景默认值
const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 1024
	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 768
	// DefaultFrameRate 默认时间轴帧率
	DefaultFrameRate = 30.0
	// DefaultNumFrames 默认时间轴长度（帧）
	DefaultNumFrames = 300
	// DefaultResourcesDir 默认资源目录
	DefaultResourcesDir = "resources"
)

// MachinesConfig 机械装置场景配置
//
// 描述窗口、时间轴以及场景中摆放的机器。
//
// 配置文件位置: data/machines.yaml
type MachinesConfig struct {
	// Window 窗口尺寸
	Window WindowConfig `yaml:"window"`

	// FrameRate 时间轴帧率（帧/秒）
	FrameRate float64 `yaml:"frameRate"`

	// NumFrames 时间轴总帧数，播放到末尾后停止
	NumFrames int `yaml:"numFrames"`

	// ResourcesDir 资源目录，图片位于其 images/ 子目录
	ResourcesDir string `yaml:"resourcesDir"`

	// Machines 场景中的机器，按绘制顺序排列
	Machines []PlacedMachine `yaml:"machines"`
}

// WindowConfig 窗口尺寸
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlacedMachine 场景中的一台机器
type PlacedMachine struct {
	// Name 机器名称，同时是存档的键
	Name string `yaml:"name"`

	// Number 机器编号（1 或 2）
	Number int `yaml:"number"`

	// StartFrame 机器开始运行的时间轴帧
	StartFrame int `yaml:"startFrame"`

	// Location 机器在屏幕上的锚点
	Location Point `yaml:"location"`
}

// Point 二维坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadMachinesConfig 从文件加载场景配置
//
// 参数:
//   - path: 配置文件路径（如 "data/machines.yaml"）
//
// 返回:
//   - *MachinesConfig: 补全默认值并验证通过的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadMachinesConfig(path string) (*MachinesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machines config: %w", err)
	}
	return ParseMachinesConfig(data)
}

// ParseMachinesConfig 解析 YAML 格式的场景配置
//
// 未填写的窗口尺寸、帧率、总帧数和资源目录使用默认值。
func ParseMachinesConfig(data []byte) (*MachinesConfig, error) {
	var cfg MachinesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse machines config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machines config: %w", err)
	}
	return &cfg, nil
}

func (c *MachinesConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.FrameRate == 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.NumFrames == 0 {
		c.NumFrames = DefaultNumFrames
	}
	if c.ResourcesDir == "" {
		c.ResourcesDir = DefaultResourcesDir
	}
}

// Validate 验证配置有效性
//
// 检查项：
//   - 窗口尺寸、帧率、总帧数必须为正
//   - 机器编号只能是 1 或 2
//   - 机器名称不能为空且不能重复
//   - 开始帧不能为负
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *MachinesConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FrameRate <= 0 || math.IsNaN(c.FrameRate) || math.IsInf(c.FrameRate, 0) {
		return fmt.Errorf("frameRate must be positive, got %v", c.FrameRate)
	}
	if c.NumFrames <= 0 {
		return fmt.Errorf("numFrames must be positive, got %d", c.NumFrames)
	}

	seen := make(map[string]bool, len(c.Machines))
	for i, m := range c.Machines {
		if m.Name == "" {
			return fmt.Errorf("machine #%d has no name", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate machine name '%s'", m.Name)
		}
		seen[m.Name] = true

		if m.Number != 1 && m.Number != 2 {
			return fmt.Errorf("machine '%s' has unknown number %d", m.Name, m.Number)
		}
		if m.StartFrame < 0 {
			return fmt.Errorf("machine '%s' startFrame should be >= 0, got %d", m.Name, m.StartFrame)
		}
	}
	return nil
}

// Duration 时间轴总时长（秒）
func (c *MachinesConfig) Duration() float64 {
	return float64(c.NumFrames) / c.FrameRate
}

// FindMachine 按名称查找机器配置
func (c *MachinesConfig) FindMachine(name string) (PlacedMachine, bool) {
	for _, m := range c.Machines {
		if m.Name == name {
			return m, true
		}
	}
	return PlacedMachine{}, false
}
