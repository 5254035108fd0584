package components

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/machinesim/pkg/graphics"
)

// TestSparty_Construction 测试初始为压缩状态
func TestSparty_Construction(t *testing.T) {
	s := NewSparty(nil, 212, 260, 80, 15)

	assert.InDelta(t, 52, s.CompressedLength(), 1e-9)
	assert.Equal(t, s.CompressedLength(), s.SpringLength())
	assert.Equal(t, PhaseRest, s.Phase())
	h, v := s.Bounce()
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.0, v)
}

// TestSparty_PopupAndBounce 测试弹出过程和晃动衰减
func TestSparty_PopupAndBounce(t *testing.T) {
	s := NewSparty(nil, 212, 260, 80, 15)

	s.Advance(frameDelta)
	assert.Equal(t, 0.0, s.PopupAngle(), "未触发时不应弹出")

	s.KeyFall()
	prev := 0.0
	for i := 1; i <= 7; i++ {
		s.Advance(frameDelta)
		assert.Greater(t, s.PopupAngle(), prev)
		assert.Less(t, s.PopupAngle(), SpartyOpenAngle)
		prev = s.PopupAngle()
		h, _ := s.Bounce()
		assert.Equal(t, 0.0, h, "弹出过程中没有晃动")
	}

	// 第 8 帧到达终点：设置幅度并在同一帧衰减一次
	s.Advance(frameDelta)
	require.Equal(t, SpartyOpenAngle, s.PopupAngle())
	assert.Equal(t, PhaseOpen, s.Phase())
	assert.InDelta(t, 260, s.SpringLength(), 1e-9)
	h, v := s.Bounce()
	assert.InDelta(t, BounceHorizontalAmplitude*BounceDecay, h, 1e-9)
	assert.InDelta(t, BounceVerticalAmplitude*BounceDecay, v, 1e-9)

	// 之后每帧几何衰减
	s.Advance(frameDelta)
	h2, v2 := s.Bounce()
	assert.InDelta(t, h*BounceDecay, h2, 1e-9)
	assert.InDelta(t, v*BounceDecay, v2, 1e-9)
	assert.Equal(t, SpartyOpenAngle, s.PopupAngle())
}

// TestSparty_SpringLengthFollowsAngle 测试弹簧长度 = 压缩 + sin(角度)*(全长-压缩)
func TestSparty_SpringLengthFollowsAngle(t *testing.T) {
	s := NewSparty(nil, 100, 200, 50, 10)
	s.KeyFall()
	s.Advance(0.1)

	angle := s.PopupAngle()
	assert.InDelta(t, SpartyOpenAngle*0.1/SpartyPopupTime, angle, 1e-12)
	want := 40 + math.Sin(angle)*(200-40)
	assert.InDelta(t, want, s.SpringLength(), 1e-9)
}

// TestSparty_ResetClearsBounce 测试重置清除晃动
func TestSparty_ResetClearsBounce(t *testing.T) {
	s := NewSparty(nil, 212, 260, 80, 15)
	s.KeyFall()
	for i := 0; i < 20; i++ {
		s.Advance(frameDelta)
	}

	s.Reset()
	assert.False(t, s.Popped())
	assert.Equal(t, 0.0, s.PopupAngle())
	assert.Equal(t, s.CompressedLength(), s.SpringLength())
	h, v := s.Bounce()
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, NewSparty(nil, 212, 260, 80, 15).State(), s.State())
}

// TestSparty_Draw 测试绘制弹簧和身体
func TestSparty_Draw(t *testing.T) {
	s := NewSparty(nil, 100, 200, 50, 10)
	rec := graphics.NewRecorder()
	s.Draw(rec)

	assert.Equal(t, 1, rec.Count("StrokePath"))
	assert.Equal(t, 1, rec.Count("FillRect"))
	assert.Equal(t, 0, rec.Depth())

	// 1 个 MoveTo + 每圈 2 段曲线
	for _, op := range rec.Ops() {
		if op.Name == "StrokePath" {
			assert.Equal(t, float64(1+2*10), op.Args[2])
		}
	}
}
