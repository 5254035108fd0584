package app

import "math"

// frameEpsilon 浮点累加误差容限，避免 29.9999 帧被截断成 29
const frameEpsilon = 1e-9

// Timeline 宿主时间轴
//
// 按固定帧率把真实流逝时间换算成帧号，范围 [0, numFrames]。
// 播放到末尾自动暂停。
type Timeline struct {
	frameRate float64
	numFrames int

	frame   int
	elapsed float64
	playing bool
}

// NewTimeline 创建时间轴
func NewTimeline(frameRate float64, numFrames int) *Timeline {
	if numFrames < 0 {
		numFrames = 0
	}
	return &Timeline{
		frameRate: frameRate,
		numFrames: numFrames,
	}
}

// Frame 当前帧
func (t *Timeline) Frame() int { return t.frame }

// NumFrames 总帧数
func (t *Timeline) NumFrames() int { return t.numFrames }

// FrameRate 帧率
func (t *Timeline) FrameRate() float64 { return t.frameRate }

// Playing 是否正在播放
func (t *Timeline) Playing() bool { return t.playing }

// Time 当前帧对应的秒数
func (t *Timeline) Time() float64 {
	return float64(t.frame) / t.frameRate
}

// Play 开始播放，已在末尾时从头播放
func (t *Timeline) Play() {
	if t.frame >= t.numFrames {
		t.SetFrame(0)
	}
	t.playing = true
}

// Pause 暂停
func (t *Timeline) Pause() {
	t.playing = false
}

// Toggle 切换播放/暂停
func (t *Timeline) Toggle() {
	if t.playing {
		t.Pause()
	} else {
		t.Play()
	}
}

// Tick 推进 dt 秒，返回帧号是否变化
func (t *Timeline) Tick(dt float64) bool {
	if !t.playing || dt <= 0 {
		return false
	}
	t.elapsed += dt

	frame := int(math.Floor(t.elapsed*t.frameRate + frameEpsilon))
	if frame >= t.numFrames {
		frame = t.numFrames
		t.playing = false
	}

	changed := frame != t.frame
	t.frame = frame
	return changed
}

// SetFrame 跳到指定帧（限制在 [0, numFrames]）
func (t *Timeline) SetFrame(frame int) {
	if frame < 0 {
		frame = 0
	}
	if frame > t.numFrames {
		frame = t.numFrames
	}
	t.frame = frame
	t.elapsed = float64(frame) / t.frameRate
}

// Step 前进或后退 n 帧
func (t *Timeline) Step(n int) {
	t.SetFrame(t.frame + n)
}

// Rewind 回到第 0 帧并暂停
func (t *Timeline) Rewind() {
	t.playing = false
	t.SetFrame(0)
}
