// Package utils 提供机械装置模拟和渲染共用的数学工具
package utils

import "math"

// 插值工具
//
// 机械部件的动画全部由进度值驱动（开盖角度、弹簧长度等），
// 这里提供把进度映射为绘制参数的基础函数。

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 把 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ApproxEqual 判断两个浮点数在 eps 范围内相等
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
