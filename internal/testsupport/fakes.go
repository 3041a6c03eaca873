// Package testsupport provides fake engine and inspector implementations for
// exercising the convergence loop without ffmpeg.
package testsupport

import (
	"context"
	"os"
	"sync"

	"squeeze/internal/compress"
)

// FakeInspector serves a fixed MediaInfo and records inspected paths.
type FakeInspector struct {
	Info compress.MediaInfo
	Err  error

	mu    sync.Mutex
	Paths []string
}

func (f *FakeInspector) Inspect(_ context.Context, path string) (compress.MediaInfo, error) {
	f.mu.Lock()
	f.Paths = append(f.Paths, path)
	f.mu.Unlock()
	if f.Err != nil {
		return compress.MediaInfo{}, f.Err
	}
	return f.Info, nil
}

// FakeEngine produces candidate files with scripted byte sizes. Each Encode
// call consumes the next entry of Sizes; the final entry repeats once the
// script runs out. The output path is taken from the last argument of the
// built command, matching the real argument layout.
type FakeEngine struct {
	Supported  bool
	SupportErr error
	EncodeErr  error
	Sizes      []int64

	mu    sync.Mutex
	calls [][]string
}

func (f *FakeEngine) SupportsHardwareEncoder(_ context.Context, _ string) (bool, error) {
	if f.SupportErr != nil {
		return false, f.SupportErr
	}
	return f.Supported, nil
}

func (f *FakeEngine) Encode(ctx context.Context, args []string, progress func(outTimeSeconds float64)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	call := append([]string(nil), args...)
	f.calls = append(f.calls, call)
	index := len(f.calls) - 1
	f.mu.Unlock()

	if f.EncodeErr != nil {
		return f.EncodeErr
	}

	size := int64(0)
	if len(f.Sizes) > 0 {
		if index >= len(f.Sizes) {
			index = len(f.Sizes) - 1
		}
		size = f.Sizes[index]
	}

	output := args[len(args)-1]
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := file.Truncate(size); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	if progress != nil {
		progress(0)
	}
	return nil
}

// Calls returns the recorded argument lists in invocation order.
func (f *FakeEngine) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]string, len(f.calls))
	copy(out, f.calls)
	return out
}

var (
	_ compress.Inspector = (*FakeInspector)(nil)
	_ compress.Engine    = (*FakeEngine)(nil)
)
