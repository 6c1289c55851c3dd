// Package application orchestrates availability checks over a batch
// of candidate domains.
package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/domainscout/domainscout/pkg/domain/entity"
	"github.com/domainscout/domainscout/pkg/domain/repository"
	"github.com/domainscout/domainscout/pkg/domain/service"
	"go.uber.org/zap"
)

// ProgressObserver receives one event per completed domain. The core
// has no UI dependency; presenters subscribe through this interface.
type ProgressObserver interface {
	// OnBatchStart is called once with the number of non-blank inputs.
	OnBatchStart(total int)
	// OnDomainChecked is called after each record is finalized.
	OnDomainChecked(record *entity.ResultRecord, done, total int)
}

// Config holds the use case configuration.
type Config struct {
	NumWorkers int
}

// CheckUseCase runs the availability pipeline: validate suffix, probe,
// classify, enrich with price and registrar links.
type CheckUseCase struct {
	config Config

	validator service.SuffixValidator
	resolver  service.AvailabilityResolver
	estimator service.PriceEstimator
	links     service.LinkBuilder

	resultQueue repository.ResultQueue
	observers   []ProgressObserver
	logger      *zap.Logger

	metrics     entity.Metrics
	metricsLock sync.RWMutex
}

// NewCheckUseCase creates a new batch use case.
func NewCheckUseCase(
	config Config,
	validator service.SuffixValidator,
	resolver service.AvailabilityResolver,
	estimator service.PriceEstimator,
	links service.LinkBuilder,
	resultQueue repository.ResultQueue,
	logger *zap.Logger,
) *CheckUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CheckUseCase{
		config:      config,
		validator:   validator,
		resolver:    resolver,
		estimator:   estimator,
		links:       links,
		resultQueue: resultQueue,
		logger:      logger,
	}
}

// RegisterProgressObserver registers a progress observer. Must be
// called before Execute.
func (uc *CheckUseCase) RegisterProgressObserver(observer ProgressObserver) {
	uc.observers = append(uc.observers, observer)
}

// Execute checks every domain in inputs and returns one record per
// non-blank input line, in input order. A cancelled context aborts
// in-flight probes; records already resolved are still returned along
// with the context error.
func (uc *CheckUseCase) Execute(ctx context.Context, inputs []string) ([]*entity.ResultRecord, error) {
	if uc.config.NumWorkers <= 0 {
		return nil, fmt.Errorf("invalid worker pool size %d", uc.config.NumWorkers)
	}

	// Blank and whitespace-only lines are discarded, not reported.
	domains := make([]string, 0, len(inputs))
	for _, raw := range inputs {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			domains = append(domains, trimmed)
		}
	}

	total := len(domains)
	uc.metricsLock.Lock()
	uc.metrics = entity.Metrics{Total: total, StartTime: time.Now()}
	uc.metricsLock.Unlock()

	for _, observer := range uc.observers {
		observer.OnBatchStart(total)
	}

	uc.logger.Info("batch started",
		zap.Int("domains", total),
		zap.Int("workers", uc.config.NumWorkers),
	)

	// Output slot per input position; completion order never changes
	// output order.
	records := make([]*entity.ResultRecord, total)

	tasks := make(chan int)
	var wg sync.WaitGroup
	var done int64

	numWorkers := uc.config.NumWorkers
	if numWorkers > total && total > 0 {
		numWorkers = total
	}

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		worker := &worker{id: i, useCase: uc}
		go worker.run(ctx, &wg, tasks, domains, records, &done)
	}

feed:
	for i := range domains {
		select {
		case tasks <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(tasks)

	wg.Wait()

	if err := ctx.Err(); err != nil {
		uc.logger.Warn("batch aborted", zap.Int64("resolved", done))
		return compact(records), err
	}

	uc.logger.Info("batch finished",
		zap.Int("records", total),
		zap.Duration("elapsed", time.Since(uc.metrics.StartTime)),
	)

	return records, nil
}

// GetMetrics returns a snapshot of the batch counters.
func (uc *CheckUseCase) GetMetrics() entity.Metrics {
	uc.metricsLock.RLock()
	defer uc.metricsLock.RUnlock()
	return uc.metrics
}

// finalize publishes a completed record: queue, observers, counters.
func (uc *CheckUseCase) finalize(record *entity.ResultRecord, done *int64) {
	uc.metricsLock.Lock()
	uc.metrics.Done++
	switch record.Classification {
	case entity.ClassificationAvailable:
		uc.metrics.Available++
	case entity.ClassificationRegistered:
		uc.metrics.Registered++
	case entity.ClassificationUncertain:
		uc.metrics.Uncertain++
	case entity.ClassificationUnsupportedTLD:
		uc.metrics.UnsupportedTLD++
	}
	total := uc.metrics.Total
	uc.metricsLock.Unlock()

	n := int(atomic.AddInt64(done, 1))

	if uc.resultQueue != nil {
		uc.resultQueue.Send(record)
	}
	for _, observer := range uc.observers {
		observer.OnDomainChecked(record, n, total)
	}
}

// compact drops unfilled slots after an aborted batch, preserving
// input order for the records that did resolve.
func compact(records []*entity.ResultRecord) []*entity.ResultRecord {
	out := make([]*entity.ResultRecord, 0, len(records))
	for _, record := range records {
		if record != nil {
			out = append(out, record)
		}
	}
	return out
}
