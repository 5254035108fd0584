package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/decker502/machinesim/pkg/components"
	"github.com/decker502/machinesim/pkg/entities"
	"github.com/decker502/machinesim/pkg/systems"
)

// ValidFormats 支持的输出格式
var ValidFormats = []string{"yaml", "msgpack", "text"}

// TraceOptions trace 命令参数
type TraceOptions struct {
	Machine   int
	FrameRate float64
	Frames    int
	Every     int
	Seek      []int
	Kind      string
	Format    string
	Verbose   bool
}

// TraceFrame 一个采样帧
type TraceFrame struct {
	Frame      int                `yaml:"frame" msgpack:"frame"`
	Time       float64            `yaml:"time" msgpack:"time"`
	Components []components.State `yaml:"components" msgpack:"components"`
}

// TraceResult 完整输出
type TraceResult struct {
	Machine   int          `yaml:"machine" msgpack:"machine"`
	FrameRate float64      `yaml:"frameRate" msgpack:"frameRate"`
	Frames    []TraceFrame `yaml:"frames" msgpack:"frames"`
}

// NewTraceCommand 创建 machine_trace 命令
func NewTraceCommand() *cobra.Command {
	opts := &TraceOptions{}

	cmd := &cobra.Command{
		Use:   "machine_trace",
		Short: "Replay a machine headlessly and dump component state",
		Long: `Replay a machine frame by frame without opening a window and print
the state of every component at the sampled frames.

Frames are sampled every --every frames from 0 to --frames. With --seek the
given frames are visited in order instead; seeking backwards resets the
machine and replays from frame 0.

Examples:
  machine_trace --machine 1 --frames 90 --every 10
  machine_trace --machine 2 --seek 60,20,60 --kind sparty
  machine_trace --machine 1 --format msgpack > trace.msgpack`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.Machine, "machine", 1, "machine number (1|2)")
	cmd.Flags().Float64Var(&opts.FrameRate, "rate", systems.DefaultFrameRate, "frame rate (frames per second)")
	cmd.Flags().IntVar(&opts.Frames, "frames", 90, "last frame to sample")
	cmd.Flags().IntVar(&opts.Every, "every", 10, "sampling interval in frames")
	cmd.Flags().IntSliceVar(&opts.Seek, "seek", nil, "explicit frame list, visited in order")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "only report components of this kind (e.g. cam, box)")
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "output format (yaml|msgpack|text)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose log output")

	return cmd
}

// validate 检查参数
func (o *TraceOptions) validate() error {
	if !isValidFormat(o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}
	if !isKnownMachine(o.Machine) {
		return fmt.Errorf("machine %d: %w", o.Machine, entities.ErrUnknownMachine)
	}
	if o.FrameRate <= 0 || math.IsNaN(o.FrameRate) || math.IsInf(o.FrameRate, 0) {
		return fmt.Errorf("frame rate must be positive, got %v", o.FrameRate)
	}
	if len(o.Seek) == 0 {
		if o.Every <= 0 {
			return fmt.Errorf("--every must be positive, got %d", o.Every)
		}
		if o.Frames < 0 {
			return fmt.Errorf("--frames must be >= 0, got %d", o.Frames)
		}
	}
	return nil
}

// sampleFrames 返回要访问的帧序列
func (o *TraceOptions) sampleFrames() []int {
	if len(o.Seek) > 0 {
		return o.Seek
	}
	var frames []int
	for f := 0; f <= o.Frames; f += o.Every {
		frames = append(frames, f)
	}
	if frames[len(frames)-1] != o.Frames {
		frames = append(frames, o.Frames)
	}
	return frames
}

func runTrace(opts *TraceOptions, out io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if !opts.Verbose {
		log.SetOutput(io.Discard)
	}

	result := trace(opts)

	switch opts.Format {
	case "msgpack":
		if err := msgpack.NewEncoder(out).Encode(result); err != nil {
			return fmt.Errorf("failed to encode msgpack: %w", err)
		}
	case "text":
		writeText(out, result)
	default:
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	}
	return nil
}

// trace 重放机器并收集采样帧
func trace(opts *TraceOptions) TraceResult {
	sys := systems.NewMachineSystem(nil)
	sys.SetFrameRate(opts.FrameRate)
	sys.ChooseMachine(opts.Machine)

	result := TraceResult{
		Machine:   sys.MachineNumber(),
		FrameRate: sys.FrameRate(),
	}

	for _, frame := range opts.sampleFrames() {
		sys.SetMachineFrame(frame)

		var states []components.State
		for _, state := range sys.Machine().Snapshot() {
			if opts.Kind == "" || state.Kind == opts.Kind {
				states = append(states, state)
			}
		}

		result.Frames = append(result.Frames, TraceFrame{
			Frame:      sys.Frame(),
			Time:       sys.MachineTime(),
			Components: states,
		})
	}
	return result
}

// writeText 每帧一段，每个部件一行，数值按名称排序
func writeText(out io.Writer, result TraceResult) {
	fmt.Fprintf(out, "machine %d @ %g fps\n", result.Machine, result.FrameRate)
	for _, frame := range result.Frames {
		fmt.Fprintf(out, "frame %d  t=%.3f\n", frame.Frame, frame.Time)
		for _, state := range frame.Components {
			keys := make([]string, 0, len(state.Values))
			for k := range state.Values {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, fmt.Sprintf("%s=%.4f", k, state.Values[k]))
			}
			fmt.Fprintf(out, "  %-7s (%g, %g) %s\n", state.Kind, state.X, state.Y, strings.Join(parts, " "))
		}
	}
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func isKnownMachine(number int) bool {
	for _, n := range entities.MachineNumbers() {
		if n == number {
			return true
		}
	}
	return false
}
