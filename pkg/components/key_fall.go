package components

// KeyFallListener 接收凸轮钥匙下落事件的部件
type KeyFallListener interface {
	KeyFall()
}

// Phase 触发型道具的动画阶段
//
// REST -> (KeyFall) -> OPENING -> (角度到达终点) -> OPEN
type Phase int

const (
	PhaseRest Phase = iota
	PhaseOpening
	PhaseOpen
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseRest:
		return "rest"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	default:
		return "unknown"
	}
}

// openingStep 计算一次 Advance 后的开启角度
//
// 以 terminal*delta/duration 的速率增长，并钳制在 terminal。
func openingStep(angle, terminal, delta, duration float64) float64 {
	angle += terminal * delta / duration
	if angle > terminal {
		angle = terminal
	}
	return angle
}

// phaseOf 根据触发标志和当前角度推导阶段
func phaseOf(triggered bool, angle, terminal float64) Phase {
	switch {
	case !triggered:
		return PhaseRest
	case angle >= terminal:
		return PhaseOpen
	default:
		return PhaseOpening
	}
}
