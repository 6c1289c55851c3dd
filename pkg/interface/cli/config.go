package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Input/Output
	InputFile   string `short:"i" long:"input" description:"Input file with candidate domains (one per line), '-' for stdin" default:"-"`
	OutputCSV   string `short:"o" long:"output" description:"CSV output file (empty disables)" default:"results.csv"`
	OutputJSONL string `long:"jsonl" description:"JSONL output file (empty disables)"`

	// Checking
	NumWorkers   int    `long:"workers" description:"Number of concurrent domain checks" default:"8"`
	ProbeTimeout int    `long:"probe-timeout" description:"Per-probe timeout in seconds" default:"3"`
	TablesFile   string `long:"config" description:"YAML tables file (TLDs, prices, registrars); empty uses built-in tables"`

	// Real probe timeout duration (not parsed from flags directly)
	ProbeTimeoutDuration time.Duration

	// DNS servers, overridable via DOMAINSCOUT_DNS_SERVERS
	DNSServers []string

	// HTTP
	UserAgent string `long:"user-agent" description:"HTTP User-Agent header" default:"domainscout/1.0"`

	// Observability
	MetricsAddr string `long:"metrics-addr" description:"Prometheus exporter listen address (empty disables)"`
	Debug       bool   `short:"d" long:"debug" description:"Enable debug logging"`

	// UI
	NoColor    bool `long:"no-color" description:"Disable colored output"`
	NoProgress bool `long:"no-progress" description:"Disable the progress bar"`

	Version bool `short:"v" long:"version" description:"Print version and exit"`

	Args struct {
		Domains []string `positional-arg-name:"domain" description:"Domains to check (alternative to --input)"`
	} `positional-args:"yes"`
}

// ParseFlags parses command line flags and environment overrides
func ParseFlags() (*Config, error) {
	// Optional .env file, same lookup as the environment itself.
	godotenv.Load()

	cfg := &Config{}

	parser := flags.NewParser(cfg, flags.Default)
	parser.Usage = "[OPTIONS] [domain ...]"

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		return nil, err
	}

	cfg.ProbeTimeoutDuration = time.Duration(cfg.ProbeTimeout) * time.Second

	if servers := os.Getenv("DOMAINSCOUT_DNS_SERVERS"); servers != "" {
		for _, server := range strings.Split(servers, ",") {
			if trimmed := strings.TrimSpace(server); trimmed != "" {
				cfg.DNSServers = append(cfg.DNSServers, trimmed)
			}
		}
	}
	if ua := os.Getenv("DOMAINSCOUT_USER_AGENT"); ua != "" {
		cfg.UserAgent = ua
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.NumWorkers <= 0 {
		return fmt.Errorf("number of workers must be > 0, got %d", c.NumWorkers)
	}

	if c.ProbeTimeoutDuration <= 0 {
		return fmt.Errorf("probe timeout must be > 0, got %s", c.ProbeTimeoutDuration)
	}

	return nil
}
