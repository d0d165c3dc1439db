package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar renders transfer progress as a terminal byte counter
type Bar struct {
	w     io.Writer
	bar   *progressbar.ProgressBar
	total int64
	done  int64
}

// NewBar creates a progress bar writing to w, or to stderr if w is nil
func NewBar(w io.Writer) *Bar {
	if w == nil {
		w = os.Stderr
	}
	return &Bar{w: w}
}

// Start creates the underlying bar. A zero total renders a spinner instead of a percentage.
func (b *Bar) Start(name string, total int64) {
	b.total = total
	b.done = 0

	max := total
	if max <= 0 {
		max = -1
	}

	b.bar = progressbar.NewOptions64(max,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription(name),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(b.w, "\n")
		}),
	)
}

// Advance adds n transferred bytes
func (b *Bar) Advance(n int64) {
	if b.bar == nil {
		return
	}
	b.done += n
	_ = b.bar.Add64(n)
}

// Finish completes the bar. An incomplete transfer leaves the bar where it stopped.
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	if b.total > 0 && b.done != b.total {
		fmt.Fprint(b.w, "\n")
	} else {
		_ = b.bar.Finish()
	}
	b.bar = nil
}
