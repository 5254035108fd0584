package entities

import (
	"github.com/decker502/machinesim/pkg/components"
	"github.com/decker502/machinesim/pkg/machine"
)

// Machine2CrankSpeed 2 号机器曲柄转速（圈/秒）
// 传动比为 (12/24)*(15/15) = 1/2，凸轮约 1.33 秒转满一圈
const Machine2CrankSpeed = 1.5

// Machine2Factory 2 号机器工厂
//
// 比 1 号机器小一号，传动链绕过盒子上方：
//
//	曲柄 -> 轴1 -> 皮带轮1(r12) =皮带=> 皮带轮2(r24) -> 轴2
//	     -> 皮带轮3(r15) =皮带=> 皮带轮4(r15) -> 轴3 -> 凸轮
//
// 第二段皮带两轮同径，只改变位置不改变转速。凸轮先通知 Sparty 再通知盒子。
type Machine2Factory struct {
	images ImageLoader
}

// NewMachine2Factory 创建 2 号机器工厂
func NewMachine2Factory(images ImageLoader) *Machine2Factory {
	return &Machine2Factory{images: images}
}

// Create 构建 2 号机器
func (f *Machine2Factory) Create() *machine.Machine {
	m := machine.NewMachine(2)

	box := components.NewBox(200, 190, components.BoxImages{
		Background: loadOptionalImage(f.images, BoxBackgroundImage),
		Foreground: loadOptionalImage(f.images, BoxForegroundImage),
		Lid:        loadOptionalImage(f.images, BoxLidImage),
	})
	m.AddComponent(box)

	sparty := components.NewSparty(loadOptionalImage(f.images, SpartyImage), 170, 200, 60, 12)
	m.AddComponent(sparty)

	crank := components.NewCrank(Machine2CrankSpeed)
	crank.SetPosition(-200, -60)
	m.AddComponent(crank)

	shaft1 := components.NewShaft(100)
	shaft1.SetPosition(-190, -60)
	m.AddComponent(shaft1)

	shaft2 := components.NewShaft(180)
	shaft2.SetPosition(-120, -290)
	m.AddComponent(shaft2)

	shaft3 := components.NewShaft(80)
	shaft3.SetPosition(20, -230)
	m.AddComponent(shaft3)

	pulley1 := components.NewPulley(12)
	pulley1.SetPosition(-110, -60)
	m.AddComponent(pulley1)

	pulley2 := components.NewPulley(24)
	pulley2.SetPosition(-110, -290)
	m.AddComponent(pulley2)

	pulley3 := components.NewPulley(15)
	pulley3.SetPosition(40, -290)
	m.AddComponent(pulley3)

	pulley4 := components.NewPulley(15)
	pulley4.SetPosition(40, -230)
	m.AddComponent(pulley4)

	cam := components.NewCam(loadOptionalImage(f.images, KeyImage))
	cam.SetPosition(80, -230)
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
	cam.AddKeyFallListener(sparty)
	cam.AddKeyFallListener(box)

	return m
}
