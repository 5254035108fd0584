package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPulley_BeltRatio 测试皮带传动比：driven = x * r1 / r2
func TestPulley_BeltRatio(t *testing.T) {
	tests := []struct {
		name   string
		r1, r2 float64
	}{
		{"减速 20->40", 20, 40},
		{"加速 40->10", 40, 10},
		{"同径", 15, 15},
		{"非整数比", 7, 13},
	}

	inputs := []float64{0, 0.1, 0.5, 1, 3.75, 100}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := NewPulley(tt.r1)
			driven := NewPulley(tt.r2)
			driver.BeltTo(driven)

			for _, x := range inputs {
				driver.SetRotation(x)
				assert.InDelta(t, x, driver.Rotation(), 1e-12)
				assert.InDelta(t, x*tt.r1/tt.r2, driven.Rotation(), 1e-9)
			}
		})
	}
}

// TestPulley_SinksReceiveUnscaled 测试同轴部件收到未缩放的旋转，对端收到缩放后的旋转
func TestPulley_SinksReceiveUnscaled(t *testing.T) {
	driver := NewPulley(10)
	driven := NewPulley(30)
	driver.BeltTo(driven)

	onDriver := &recordingSink{}
	onDriven := &recordingSink{}
	driver.Source().AddSink(onDriver)
	driven.Source().AddSink(onDriven)

	driver.SetRotation(0.9)

	assert.Equal(t, []float64{0.9}, onDriver.got)
	assert.Len(t, onDriven.got, 1)
	assert.InDelta(t, 0.3, onDriven.got[0], 1e-12)
}

// TestPulley_TransitiveChain 测试多级传动的复合比
func TestPulley_TransitiveChain(t *testing.T) {
	p1 := NewPulley(20)
	p2 := NewPulley(40)
	shaft := NewShaft(100)
	p3 := NewPulley(10)
	p4 := NewPulley(40)
	cam := NewCam(nil)

	p1.BeltTo(p2)
	p2.Source().AddSink(shaft)
	shaft.Source().AddSink(p3)
	p3.BeltTo(p4)
	p4.Source().AddSink(cam)

	p1.SetRotation(4)

	assert.InDelta(t, 2.0, p2.Rotation(), 1e-12)
	assert.InDelta(t, 2.0, shaft.Rotation(), 1e-12)
	assert.InDelta(t, 0.5, p4.Rotation(), 1e-12)
	assert.InDelta(t, 0.5, cam.Rotation(), 1e-12)
}

// TestPulley_ResetAndDefaults 测试重置和默认半径
func TestPulley_ResetAndDefaults(t *testing.T) {
	p := NewPulley(0)
	assert.Equal(t, float64(DefaultPulleyRadius), p.Radius())
	assert.Nil(t, p.BeltPeer())

	p.SetRotation(2)
	p.Advance(0.5)
	p.Reset()
	assert.Equal(t, 0.0, p.Rotation())
	assert.Equal(t, 0.0, p.Source().Rotation())
	assert.Equal(t, 0.0, p.Time())
}
