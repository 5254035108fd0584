// cmd/machine_trace/main.go
// 机器状态跟踪工具
//
// 不打开窗口，按帧重放一台机器并输出每个采样帧的部件状态。
//
// 用法：
//
//	go run ./cmd/machine_trace --machine 1 --frames 90 --every 10
//	go run ./cmd/machine_trace --machine 2 --seek 60,20,60 --format msgpack > trace.msgpack
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewTraceCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
