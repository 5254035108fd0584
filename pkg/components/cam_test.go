package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/machinesim/pkg/graphics"
)

// countingListener 统计 KeyFall 次数
type countingListener struct {
	name  string
	log   *[]string
	count int
}

func (l *countingListener) KeyFall() {
	l.count++
	if l.log != nil {
		*l.log = append(*l.log, l.name)
	}
}

// TestCam_EdgeTriggered 测试钥匙下落是边沿触发
func TestCam_EdgeTriggered(t *testing.T) {
	var order []string
	first := &countingListener{name: "first", log: &order}
	second := &countingListener{name: "second", log: &order}

	cam := NewCam(nil)
	cam.AddKeyFallListener(first)
	cam.AddKeyFallListener(second)

	// 单调上升，恰好跨过 1.0 一次
	for _, r := range []float64{0, 0.3, 0.8, 0.99} {
		cam.SetRotation(r)
	}
	assert.False(t, cam.KeyDropped())
	assert.Equal(t, 0, first.count)

	cam.SetRotation(1.0)
	assert.True(t, cam.KeyDropped())
	assert.Equal(t, 1, first.count)
	assert.Equal(t, 1, second.count)
	assert.Equal(t, []string{"first", "second"}, order)

	// 之后在阈值上下振荡不再触发
	for _, r := range []float64{1.2, 0.5, 0.9, 1.01, 0.2, 3} {
		cam.SetRotation(r)
	}
	assert.Equal(t, 1, first.count)
	assert.Equal(t, 1, second.count)
}

// TestCam_ResetRearms 测试 Reset 重新装好钥匙
func TestCam_ResetRearms(t *testing.T) {
	listener := &countingListener{}
	cam := NewCam(nil)
	cam.AddKeyFallListener(listener)

	cam.SetRotation(1.5)
	cam.Advance(0.1)
	cam.Reset()

	assert.False(t, cam.KeyDropped())
	assert.Equal(t, 0.0, cam.Rotation())
	assert.Equal(t, 0.0, cam.Time())

	cam.SetRotation(0.5)
	assert.Equal(t, 1, listener.count)
	cam.SetRotation(1.0)
	assert.Equal(t, 2, listener.count)
}

// TestCam_JumpPastThreshold 测试一次跳过阈值也只触发一次
func TestCam_JumpPastThreshold(t *testing.T) {
	listener := &countingListener{}
	cam := NewCam(nil)
	cam.AddKeyFallListener(listener)

	cam.SetRotation(5)
	cam.SetRotation(6)
	assert.Equal(t, 1, listener.count)
}

// TestCam_HoleDependsOnRotationOnly 测试孔的绘制只由旋转决定
func TestCam_HoleDependsOnRotationOnly(t *testing.T) {
	tests := []struct {
		name        string
		rotation    float64
		wantHole    bool
		wantY       float64
		wantHeight  float64
		heightDelta float64
	}{
		{"起点", 0, true, 20, HoleSize, 0},
		{"半圈", 0.5, true, -5, HoleSize, 0},
		{"开始收缩", 0.95, true, -27.5, 4, 1e-9},
		{"到顶", 1.0, true, -30, 2, 1e-9},
		{"转到背面", 1.2, false, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCam(nil)
			cam.SetRotation(tt.rotation)
			y, h, ok := cam.hole()
			assert.Equal(t, tt.wantHole, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.wantY, y, 1e-9)
			assert.InDelta(t, tt.wantHeight, h, tt.heightDelta)

			rec := graphics.NewRecorder()
			cam.Draw(rec)
			assert.Equal(t, 1, rec.Count("FillEllipse"))
			assert.Equal(t, 0, rec.Depth())
		})
	}
}

// TestCam_KeyDropsWhenTriggered 测试钥匙下落后的绘制位置
func TestCam_KeyDropsWhenTriggered(t *testing.T) {
	cam := NewCam(nil)
	cam.SetPosition(100, 50)

	keyTop := func() float64 {
		rec := graphics.NewRecorder()
		cam.Draw(rec)
		// 第一个 FillRect 是钥匙
		for _, op := range rec.Ops() {
			if op.Name == "FillRect" {
				return op.ScreenY
			}
		}
		t.Fatal("key was not drawn")
		return 0
	}

	before := keyTop()
	cam.SetRotation(1)
	after := keyTop()
	assert.InDelta(t, KeyDrop, after-before, 1e-9)
}
