package utils

import (
	"math"
	"testing"
)

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0.02, 1.0, 0.0, 0.02},
		{"终点", 0.02, 1.0, 1.0, 1.0},
		{"中点", 10, 20, 0.5, 15},
		{"反向区间", 100, 0, 0.25, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp 测试区间限制
func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"区间内", 0.5, 0.5},
		{"低于下界", -1, 0},
		{"高于上界", math.Pi, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, 0, math.Pi/2); got != tt.expected {
				t.Errorf("Clamp(%v) = %v, 期望 %v", tt.v, got, tt.expected)
			}
		})
	}
}

// TestApproxEqual 测试浮点比较
func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(0.1+0.2, 0.3, 1e-12) {
		t.Error("0.1+0.2 应近似等于 0.3")
	}
	if ApproxEqual(1.0, 1.1, 1e-3) {
		t.Error("1.0 与 1.1 不应近似相等")
	}
}
