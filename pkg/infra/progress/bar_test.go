package progress_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ankitskvmdam/download-priors/pkg/domain/interfaces"
	"github.com/ankitskvmdam/download-priors/pkg/infra/progress"
)

var _ interfaces.Progress = (*progress.Bar)(nil)

func TestBar_KnownSize(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.NewBar(&buf)

	bar.Start("reinvent.prior", 4096)
	for i := 0; i < 4; i++ {
		bar.Advance(1024)
	}
	bar.Finish()

	gt.String(t, buf.String()).Contains("reinvent.prior")
}

func TestBar_UnknownSize(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.NewBar(&buf)

	bar.Start("libinvent.prior", 0)
	bar.Advance(512)
	bar.Finish()

	gt.String(t, buf.String()).Contains("libinvent.prior")
}

func TestBar_IncompleteTransfer(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.NewBar(&buf)

	bar.Start("linkinvent.prior", 4096)
	bar.Advance(1024)
	bar.Finish()

	gt.V(t, bytes.HasSuffix(buf.Bytes(), []byte("\n"))).Equal(true)
}

func TestBar_CallsWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.NewBar(&buf)

	bar.Advance(10)
	bar.Finish()

	gt.Equal(t, buf.Len(), 0)
}
