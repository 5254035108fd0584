// Package entities 提供机器工厂
//
// 每个工厂构建一台固定的、已完成连线的机器：创建部件、摆放位置、
// 连接旋转图（旋转源 -> 接收者、皮带）和事件图（凸轮 -> 监听者），
// 最后按传动顺序注册到 Machine。Create 返回后工厂不再持有任何状态。
package entities

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/machinesim/pkg/machine"
)

// 贴图文件名（相对于资源目录下的 images/）
const (
	BoxBackgroundImage = "box-background.png"
	BoxForegroundImage = "box-foreground.png"
	BoxLidImage        = "box-lid.png"
	KeyImage           = "key.png"
	SpartyImage        = "sparty.png"
)

// ErrUnknownMachine 没有对应编号的机器
var ErrUnknownMachine = errors.New("unknown machine number")

// ImageLoader 贴图加载接口
// 由 game.ResourceManager 实现；测试中可以传 nil，部件会使用纯色绘制。
type ImageLoader interface {
	LoadImage(name string) (*ebiten.Image, error)
}

// MachineFactory 机器工厂
type MachineFactory interface {
	// Create 构建一台新的、处于静止状态的机器
	Create() *machine.Machine
}

// NewMachineFactory 返回编号对应的工厂
//
// 返回：
//   - MachineFactory: 工厂实例
//   - error: 编号未知时返回 ErrUnknownMachine
func NewMachineFactory(number int, images ImageLoader) (MachineFactory, error) {
	switch number {
	case 1:
		return NewMachine1Factory(images), nil
	case 2:
		return NewMachine2Factory(images), nil
	default:
		return nil, fmt.Errorf("machine %d: %w", number, ErrUnknownMachine)
	}
}

// MachineNumbers 返回所有可选的机器编号
func MachineNumbers() []int {
	return []int{1, 2}
}

// loadOptionalImage 加载可选贴图，失败时返回 nil
func loadOptionalImage(images ImageLoader, name string) *ebiten.Image {
	if images == nil {
		return nil
	}
	img, err := images.LoadImage(name)
	if err != nil {
		log.Printf("[MachineFactory] Image %s unavailable, using solid color: %v", name, err)
		return nil
	}
	return img
}
