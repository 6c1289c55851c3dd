// Package presenter renders batch progress and results on the
// terminal. It consumes the core's observer events and never leaks
// back into it.
package presenter

import (
	"github.com/domainscout/domainscout/pkg/domain/entity"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress is an application.ProgressObserver backed by an mpb bar.
type Progress struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

// NewProgress creates the progress renderer.
func NewProgress() *Progress {
	return &Progress{
		progress: mpb.New(mpb.WithWidth(64)),
	}
}

// OnBatchStart implements application.ProgressObserver.
func (p *Progress) OnBatchStart(total int) {
	p.bar = p.progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("checking", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("[%d / %d]", decor.WCSyncWidth),
			decor.Percentage(decor.WCSyncSpace),
			decor.OnComplete(
				decor.AverageETA(decor.ET_STYLE_GO, decor.WCSyncSpace), "done",
			),
		),
	)
}

// OnDomainChecked implements application.ProgressObserver.
func (p *Progress) OnDomainChecked(record *entity.ResultRecord, done, total int) {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Wait blocks until the bar has rendered its final state.
func (p *Progress) Wait() {
	if p.bar != nil {
		p.bar.SetTotal(-1, true)
	}
	p.progress.Wait()
}
