package application

import (
	"context"
	"sync"
	"time"

	"github.com/domainscout/domainscout/pkg/domain/entity"
)

// worker drains the task channel and fills the indexed record slots.
type worker struct {
	id      int
	useCase *CheckUseCase
}

func (w *worker) run(
	ctx context.Context,
	wg *sync.WaitGroup,
	tasks <-chan int,
	domains []string,
	records []*entity.ResultRecord,
	done *int64,
) {
	defer wg.Done()

	for idx := range tasks {
		select {
		case <-ctx.Done():
			return
		default:
		}

		record := w.check(ctx, idx, domains[idx])

		// A record built from abandoned probes is not a result.
		if ctx.Err() != nil {
			return
		}

		records[idx] = record
		w.useCase.finalize(record, done)
	}
}

// check produces the record for one domain. Suffix validation runs
// first and is pure; only validated domains reach the probes.
func (w *worker) check(ctx context.Context, idx int, domain string) *entity.ResultRecord {
	uc := w.useCase

	if _, err := uc.validator.Validate(domain); err != nil {
		return &entity.ResultRecord{
			Index:          idx,
			Domain:         domain,
			Classification: entity.ClassificationUnsupportedTLD,
			Price:          entity.Placeholder,
			Links:          placeholderLinks(uc.links.Registrars()),
			CheckedAt:      time.Now(),
		}
	}

	classification, signals := uc.resolver.Resolve(ctx, domain)

	// Price and links are attached regardless of classification; a
	// registered or uncertain verdict is still worth double-checking
	// at the registrar.
	links := make([]entity.RegistrarLink, 0, len(uc.links.Registrars()))
	for _, registrar := range uc.links.Registrars() {
		url, err := uc.links.Build(domain, registrar)
		if err != nil {
			// Unknown registrar names cannot come from Registrars().
			continue
		}
		links = append(links, entity.RegistrarLink{Registrar: registrar, URL: url})
	}

	return &entity.ResultRecord{
		Index:          idx,
		Domain:         domain,
		Classification: classification,
		Signals:        signals,
		Price:          uc.estimator.Estimate(domain).String(),
		Links:          links,
		CheckedAt:      time.Now(),
	}
}

func placeholderLinks(registrars []string) []entity.RegistrarLink {
	links := make([]entity.RegistrarLink, 0, len(registrars))
	for _, registrar := range registrars {
		links = append(links, entity.RegistrarLink{Registrar: registrar, URL: entity.Placeholder})
	}
	return links
}
