package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"squeeze/internal/compress"
)

// runObserver renders controller callbacks: a per-attempt progress bar in
// interactive mode, plain diagnostic lines in verbose mode.
type runObserver struct {
	console   *console
	verbose   bool
	showBars  bool
	totalRung int
	rungIndex int
	bar       *progressbar.ProgressBar
}

func newRunObserver(cons *console, verbose, quiet bool) *runObserver {
	return &runObserver{
		console:  cons,
		verbose:  verbose,
		showBars: !quiet && !verbose && colorEnabled(false),
	}
}

func (o *runObserver) RungStarted(rungIndex, totalRungs int, rung compress.Rung) {
	o.rungIndex = rungIndex
	o.totalRung = totalRungs
	if o.verbose {
		o.console.debug(fmt.Sprintf("rung %d/%d: %dpx %dfps audio %dk",
			rungIndex, totalRungs, rung.MaxWidth, rung.FPS, rung.AudioKbps))
	}
}

func (o *runObserver) AttemptStarted(attempt int, plan compress.EncodePlan) {
	if o.verbose {
		o.console.debug(fmt.Sprintf("[%d] %s w<=%d %dfps a=%dk v=%dk",
			attempt, plan.Codec, plan.MaxWidth, plan.FPS, plan.AudioKbps, plan.VideoKbps))
		return
	}
	if !o.showBars {
		return
	}
	o.finishBar()
	label := fmt.Sprintf("%d/%d %dpx %dfps %dkbps", o.rungIndex, o.totalRung, plan.MaxWidth, plan.FPS, plan.VideoKbps)
	o.bar = progressbar.NewOptions(100,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
}

func (o *runObserver) EncodeProgress(fraction float64) {
	if o.bar == nil {
		return
	}
	_ = o.bar.Set(int(fraction * 100))
}

func (o *runObserver) AttemptFinished(attempt int, sizeBytes, targetBytes int64) {
	o.finishBar()
	if o.verbose {
		o.console.debug(fmt.Sprintf("[%d] result: %s (target %s)",
			attempt, formatSize(sizeBytes), formatSize(targetBytes)))
	}
}

// close clears any in-flight bar; called once the run finishes either way.
func (o *runObserver) close() {
	o.finishBar()
}

func (o *runObserver) finishBar() {
	if o.bar == nil {
		return
	}
	_ = o.bar.Finish()
	o.bar = nil
}

var _ compress.Observer = (*runObserver)(nil)
