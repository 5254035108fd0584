package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/machinesim/pkg/components"
	"github.com/decker502/machinesim/pkg/machine"
)

// failingLoader 所有贴图都加载失败
type failingLoader struct {
	requested []string
}

func (l *failingLoader) LoadImage(name string) (*ebiten.Image, error) {
	l.requested = append(l.requested, name)
	return nil, errors.New("not found")
}

// TestNewMachineFactory 测试按编号选择工厂
func TestNewMachineFactory(t *testing.T) {
	tests := []struct {
		number  int
		wantErr bool
	}{
		{1, false},
		{2, false},
		{0, true},
		{3, true},
		{-1, true},
	}

	for _, tt := range tests {
		factory, err := NewMachineFactory(tt.number, nil)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownMachine) {
				t.Errorf("NewMachineFactory(%d) error = %v, 期望 ErrUnknownMachine", tt.number, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewMachineFactory(%d) error: %v", tt.number, err)
		}
		m := factory.Create()
		if m.Number() != tt.number {
			t.Errorf("Create().Number() = %d, 期望 %d", m.Number(), tt.number)
		}
	}
}

// TestMachineFactories_Parts 测试每台机器的部件组成
func TestMachineFactories_Parts(t *testing.T) {
	for _, number := range MachineNumbers() {
		factory, err := NewMachineFactory(number, nil)
		if err != nil {
			t.Fatal(err)
		}
		m := factory.Create()

		counts := map[string]int{}
		for _, s := range m.Snapshot() {
			counts[s.Kind]++
		}
		want := map[string]int{"box": 1, "sparty": 1, "crank": 1, "shaft": 3, "pulley": 4, "cam": 1}
		for kind, n := range want {
			if counts[kind] != n {
				t.Errorf("machine %d: %s count = %d, 期望 %d", number, kind, counts[kind], n)
			}
		}

		// 新机器处于静止状态
		if m.Time() != 0 {
			t.Errorf("machine %d: Time() = %v, 期望 0", number, m.Time())
		}
	}
}

// TestMachineFactories_GearRatio 测试曲柄到凸轮的复合传动比
func TestMachineFactories_GearRatio(t *testing.T) {
	tests := []struct {
		factory MachineFactory
		// 推进 1 秒后凸轮应有的旋转
		wantCam float64
	}{
		{NewMachine1Factory(nil), Machine1CrankSpeed / 8},
		{NewMachine2Factory(nil), Machine2CrankSpeed / 2},
	}

	for _, tt := range tests {
		m := tt.factory.Create()
		m.Advance(1)

		cam, ok := machine.Find[*components.Cam](m)
		if !ok {
			t.Fatalf("machine %d has no cam", m.Number())
		}
		if math.Abs(cam.Rotation()-tt.wantCam) > 1e-12 {
			t.Errorf("machine %d: cam rotation = %v, 期望 %v", m.Number(), cam.Rotation(), tt.wantCam)
		}
	}
}

// TestMachineFactories_KeyFallWiring 测试凸轮触发后盒子和 Sparty 都收到事件
func TestMachineFactories_KeyFallWiring(t *testing.T) {
	for _, number := range MachineNumbers() {
		factory, _ := NewMachineFactory(number, nil)
		m := factory.Create()

		cam, _ := machine.Find[*components.Cam](m)
		box, _ := machine.Find[*components.Box](m)
		sparty, _ := machine.Find[*components.Sparty](m)

		cam.SetRotation(1)
		if !box.IsOpen() || !sparty.Popped() {
			t.Errorf("machine %d: box open=%v sparty popped=%v, 期望都为 true", number, box.IsOpen(), sparty.Popped())
		}
	}
}

// TestMachineFactories_IndependentInstances 测试每次 Create 都是独立的机器
func TestMachineFactories_IndependentInstances(t *testing.T) {
	f := NewMachine1Factory(nil)
	a := f.Create()
	b := f.Create()

	a.Advance(5)
	boxB, _ := machine.Find[*components.Box](b)
	if boxB.IsOpen() || b.Time() != 0 {
		t.Error("推进一台机器不应影响另一台")
	}
}

// TestMachineFactories_MissingImages 测试贴图缺失时退化为纯色
func TestMachineFactories_MissingImages(t *testing.T) {
	loader := &failingLoader{}
	m := NewMachine1Factory(loader).Create()

	if len(m.Components()) == 0 {
		t.Fatal("machine should still be built")
	}
	want := []string{BoxBackgroundImage, BoxForegroundImage, BoxLidImage, SpartyImage, KeyImage}
	if len(loader.requested) != len(want) {
		t.Fatalf("requested = %v, 期望 %v", loader.requested, want)
	}
	for i := range want {
		if loader.requested[i] != want[i] {
			t.Errorf("requested[%d] = %s, 期望 %s", i, loader.requested[i], want[i])
		}
	}
}
