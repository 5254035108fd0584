package components

// RotationSink 可以被转动的部件
type RotationSink interface {
	// SetRotation 设置旋转，单位为圈
	SetRotation(rotation float64)
}

// RotationSource 旋转的发布者
//
// 保存最后一次广播的旋转值和按订阅顺序排列的接收者。
// 接收者是非拥有引用：它们和发布者都归同一台 Machine 所有。
type RotationSource struct {
	rotation float64
	sinks    []RotationSink
}

// AddSink 添加接收者；不做去重，重复添加会重复收到更新
func (s *RotationSource) AddSink(sink RotationSink) {
	s.sinks = append(s.sinks, sink)
}

// SetRotation 保存旋转并按订阅顺序同步推送给所有接收者
func (s *RotationSource) SetRotation(rotation float64) {
	s.rotation = rotation
	for _, sink := range s.sinks {
		sink.SetRotation(rotation)
	}
}

// Rotation 返回最后一次广播的旋转值
func (s *RotationSource) Rotation() float64 {
	return s.rotation
}

// NumSinks 返回接收者数量
func (s *RotationSource) NumSinks() int {
	return len(s.sinks)
}

// reset 清零旋转值，不向下游推送
func (s *RotationSource) reset() {
	s.rotation = 0
}
