package entities

import (
	"github.com/decker502/machinesim/pkg/components"
	"github.com/decker502/machinesim/pkg/machine"
)

// Machine1CrankSpeed 1 号机器曲柄转速（圈/秒）
// 传动比为 (20/40)*(10/40) = 1/8，凸轮在 2 秒时转满一圈
const Machine1CrankSpeed = 4.0

// Machine1Factory 1 号机器工厂
//
// 传动链：
//
//	曲柄 -> 轴1 -> 皮带轮1(r20) =皮带=> 皮带轮2(r40) -> 轴2
//	     -> 皮带轮3(r10) =皮带=> 皮带轮4(r40) -> 轴3 -> 凸轮
//
// 凸轮触发后依次通知盒子和 Sparty。
type Machine1Factory struct {
	images ImageLoader
}

// NewMachine1Factory 创建 1 号机器工厂
func NewMachine1Factory(images ImageLoader) *Machine1Factory {
	return &Machine1Factory{images: images}
}

// Create 构建 1 号机器
func (f *Machine1Factory) Create() *machine.Machine {
	m := machine.NewMachine(1)

	box := components.NewBox(250, 240, components.BoxImages{
		Background: loadOptionalImage(f.images, BoxBackgroundImage),
		Foreground: loadOptionalImage(f.images, BoxForegroundImage),
		Lid:        loadOptionalImage(f.images, BoxLidImage),
	})
	m.AddComponent(box)

	sparty := components.NewSparty(loadOptionalImage(f.images, SpartyImage), 212, 260, 80, 15)
	m.AddComponent(sparty)

	shaft1 := components.NewShaft(80)
	shaft1.SetPosition(80, -175)
	m.AddComponent(shaft1)

	crank := components.NewCrank(Machine1CrankSpeed)
	crank.SetPosition(150, -100)
	m.AddComponent(crank)

	shaft2 := components.NewShaft(230)
	shaft2.SetPosition(-115, -75)
	m.AddComponent(shaft2)

	shaft3 := components.NewShaft(60)
	shaft3.SetPosition(-115, -175)
	m.AddComponent(shaft3)

	pulley1 := components.NewPulley(20)
	pulley1.SetPosition(95, -175)
	m.AddComponent(pulley1)

	pulley2 := components.NewPulley(40)
	pulley2.SetPosition(95, -75)
	m.AddComponent(pulley2)

	pulley3 := components.NewPulley(10)
	pulley3.SetPosition(-105, -75)
	m.AddComponent(pulley3)

	pulley4 := components.NewPulley(40)
	pulley4.SetPosition(-105, -175)
	m.AddComponent(pulley4)

	cam := components.NewCam(loadOptionalImage(f.images, KeyImage))
	cam.SetPosition(-70, -175)
	m.AddComponent(cam)

	// 旋转图
	crank.Source().AddSink(shaft1)
	shaft1.Source().AddSink(pulley1)
	pulley1.BeltTo(pulley2)
	pulley2.Source().AddSink(shaft2)
	shaft2.Source().AddSink(pulley3)
	pulley3.BeltTo(pulley4)
	pulley4.Source().AddSink(shaft3)
	shaft3.Source().AddSink(cam)

	// 事件图
	cam.AddKeyFallListener(box)
	cam.AddKeyFallListener(sparty)

	return m
}
