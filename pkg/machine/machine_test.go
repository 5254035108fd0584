package machine

import (
	"testing"

	"github.com/decker502/machinesim/pkg/components"
	"github.com/decker502/machinesim/pkg/graphics"
)

// spyComponent 记录调用顺序的部件
type spyComponent struct {
	components.Base
	name string
	log  *[]string
}

func (s *spyComponent) Advance(delta float64) {
	s.Base.Advance(delta)
	*s.log = append(*s.log, "advance:"+s.name)
}

func (s *spyComponent) Reset() {
	s.Base.Reset()
	*s.log = append(*s.log, "reset:"+s.name)
}

func (s *spyComponent) Draw(gc graphics.Context) {
	*s.log = append(*s.log, "draw:"+s.name)
}

func (s *spyComponent) DrawForeground(gc graphics.Context) {
	*s.log = append(*s.log, "fg:"+s.name)
}

func (s *spyComponent) State() components.State {
	return components.State{Kind: s.name, Time: s.Time()}
}

func newSpyMachine(log *[]string, names ...string) *Machine {
	m := NewMachine(9)
	for _, n := range names {
		m.AddComponent(&spyComponent{name: n, log: log})
	}
	return m
}

func equalLog(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("log = %v, 期望 %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("log = %v, 期望 %v", got, want)
		}
	}
}

// TestMachine_AdvanceInInsertionOrder 测试按插入顺序推进并累加时间
func TestMachine_AdvanceInInsertionOrder(t *testing.T) {
	var log []string
	m := newSpyMachine(&log, "a", "b", "c")

	m.Advance(0.5)
	m.Advance(0.25)

	equalLog(t, log, []string{
		"advance:a", "advance:b", "advance:c",
		"advance:a", "advance:b", "advance:c",
	})
	if m.Time() != 0.75 {
		t.Errorf("Time() = %v, 期望 0.75", m.Time())
	}
	for _, c := range m.Components() {
		if c.Time() != 0.75 {
			t.Errorf("component time = %v, 期望 0.75", c.Time())
		}
	}
}

// TestMachine_Reset 测试重置所有部件并清零时间
func TestMachine_Reset(t *testing.T) {
	var log []string
	m := newSpyMachine(&log, "a", "b")
	m.Advance(1)
	log = log[:0]

	m.Reset()

	equalLog(t, log, []string{"reset:a", "reset:b"})
	if m.Time() != 0 {
		t.Errorf("Time() = %v, 期望 0", m.Time())
	}
}

// TestMachine_DrawTwoPasses 测试先绘制主体再绘制前景
func TestMachine_DrawTwoPasses(t *testing.T) {
	var log []string
	m := newSpyMachine(&log, "a", "b", "c")

	m.Draw(graphics.NewRecorder())

	equalLog(t, log, []string{
		"draw:a", "draw:b", "draw:c",
		"fg:a", "fg:b", "fg:c",
	})
}

// TestMachine_SetTimeAndNumber 测试时间校正和编号
func TestMachine_SetTimeAndNumber(t *testing.T) {
	m := NewMachine(2)
	if m.Number() != 2 {
		t.Errorf("Number() = %d, 期望 2", m.Number())
	}
	m.Advance(0.1)
	m.SetTime(3)
	if m.Time() != 3 {
		t.Errorf("Time() = %v, 期望 3", m.Time())
	}
}

// TestMachine_SnapshotAndFind 测试快照和按类型查找
func TestMachine_SnapshotAndFind(t *testing.T) {
	m := NewMachine(1)
	box := components.NewBox(100, 90, components.BoxImages{})
	cam := components.NewCam(nil)
	p1 := components.NewPulley(10)
	p2 := components.NewPulley(20)
	m.AddComponent(box)
	m.AddComponent(p1)
	m.AddComponent(cam)
	m.AddComponent(p2)

	states := m.Snapshot()
	kinds := make([]string, 0, len(states))
	for _, s := range states {
		kinds = append(kinds, s.Kind)
	}
	equalLog(t, kinds, []string{"box", "pulley", "cam", "pulley"})

	gotCam, ok := Find[*components.Cam](m)
	if !ok || gotCam != cam {
		t.Error("Find[*Cam] 应返回注册的凸轮")
	}
	if _, ok := Find[*components.Sparty](m); ok {
		t.Error("Find[*Sparty] 不应找到部件")
	}

	pulleys := FindAll[*components.Pulley](m)
	if len(pulleys) != 2 || pulleys[0] != p1 || pulleys[1] != p2 {
		t.Errorf("FindAll[*Pulley] = %v, 期望按插入顺序的两个皮带轮", pulleys)
	}
}
