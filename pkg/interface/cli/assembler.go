package cli

import (
	"fmt"

	"github.com/domainscout/domainscout/pkg/application"
	"github.com/domainscout/domainscout/pkg/config"
	"github.com/domainscout/domainscout/pkg/domain/repository"
	"github.com/domainscout/domainscout/pkg/domain/service"
	"github.com/domainscout/domainscout/pkg/infrastructure/dns"
	"github.com/domainscout/domainscout/pkg/infrastructure/domainservice"
	"github.com/domainscout/domainscout/pkg/infrastructure/http"
	"github.com/domainscout/domainscout/pkg/infrastructure/pricing"
	"github.com/domainscout/domainscout/pkg/infrastructure/registrar"
	"github.com/domainscout/domainscout/pkg/infrastructure/storage"
	"github.com/domainscout/domainscout/pkg/infrastructure/whois"
	"github.com/domainscout/domainscout/pkg/input"
	"github.com/domainscout/domainscout/pkg/resolver"
	"go.uber.org/zap"
)

// Assembler assembles all components for the application
type Assembler struct {
	config *Config
	logger *zap.Logger
}

// NewAssembler creates a new assembler
func NewAssembler(config *Config, logger *zap.Logger) *Assembler {
	return &Assembler{config: config, logger: logger}
}

// Assembled bundles the wired use case with its collaborators that
// the entry point still needs.
type Assembled struct {
	UseCase     *application.CheckUseCase
	Domains     []string
	Registrars  []string
	ResultQueue repository.ResultQueue
	Writers     []repository.ResultWriter
}

// Assemble assembles the check use case with all dependencies
func (a *Assembler) Assemble() (*Assembled, error) {
	tables, err := config.Load(a.config.TablesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}

	domains, err := a.loadDomains()
	if err != nil {
		return nil, fmt.Errorf("failed to load domains: %w", err)
	}
	if len(domains) == 0 {
		return nil, fmt.Errorf("no domains provided")
	}

	validator := domainservice.NewValidator(tables.TLDs)
	estimator := pricing.NewEstimator(tables)
	links := registrar.NewBuilder(tables)

	probers := []service.Prober{
		whois.NewProber(whois.Config{
			Timeout: a.config.ProbeTimeoutDuration,
			Logger:  a.logger,
		}),
		dns.NewProber(dns.Config{
			Servers: a.config.DNSServers,
			Timeout: a.config.ProbeTimeoutDuration,
			Logger:  a.logger,
		}),
		http.NewProber(http.Config{
			Timeout:   a.config.ProbeTimeoutDuration,
			UserAgent: a.config.UserAgent,
		}),
	}

	availability := resolver.New(probers, a.logger)

	resultQueue := storage.NewResultQueue(len(domains))

	var writers []repository.ResultWriter
	if a.config.OutputCSV != "" {
		csvWriter, err := storage.NewCSVWriter(a.config.OutputCSV, links.Registrars())
		if err != nil {
			return nil, fmt.Errorf("failed to create CSV writer: %w", err)
		}
		writers = append(writers, csvWriter)
	}
	if a.config.OutputJSONL != "" {
		jsonlWriter, err := storage.NewJSONLWriter(a.config.OutputJSONL)
		if err != nil {
			for _, w := range writers {
				w.Close()
			}
			return nil, fmt.Errorf("failed to create JSONL writer: %w", err)
		}
		writers = append(writers, jsonlWriter)
	}

	useCase := application.NewCheckUseCase(
		application.Config{NumWorkers: a.config.NumWorkers},
		validator,
		availability,
		estimator,
		links,
		resultQueue,
		a.logger,
	)

	return &Assembled{
		UseCase:     useCase,
		Domains:     domains,
		Registrars:  links.Registrars(),
		ResultQueue: resultQueue,
		Writers:     writers,
	}, nil
}

// loadDomains takes positional domains when given, the input file
// otherwise.
func (a *Assembler) loadDomains() ([]string, error) {
	if len(a.config.Args.Domains) > 0 {
		return a.config.Args.Domains, nil
	}
	return input.NewLoader().Load(a.config.InputFile)
}
