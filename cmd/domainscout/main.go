package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/domainscout/domainscout/pkg/interface/cli"
	"github.com/domainscout/domainscout/pkg/interface/presenter"
	"github.com/domainscout/domainscout/pkg/logging"
	"github.com/domainscout/domainscout/pkg/metrics"
	"github.com/domainscout/domainscout/pkg/version"
)

func main() {
	config, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.Version {
		fmt.Println(version.Short())
		os.Exit(0)
	}

	logger, err := logging.New(config.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	assembler := cli.NewAssembler(config, logger)
	assembled, err := assembler.Assemble()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(config.MetricsAddr); err != nil {
				fmt.Fprintf(os.Stderr, "Metrics exporter error: %v\n", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	var progress *presenter.Progress
	if !config.NoProgress {
		progress = presenter.NewProgress()
		assembled.UseCase.RegisterProgressObserver(progress)
	}

	// Stream completed records to the writers as they arrive;
	// completion order is fine here, ordered output comes from the
	// returned slice.
	var writerWG sync.WaitGroup
	writerWG.Add(1)
	go func() {
		defer writerWG.Done()
		for {
			record, ok := assembled.ResultQueue.Receive()
			if !ok {
				return
			}
			for _, writer := range assembled.Writers {
				if err := writer.Write(record); err != nil {
					fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
				}
			}
		}
	}()

	records, runErr := assembled.UseCase.Execute(ctx, assembled.Domains)

	assembled.ResultQueue.Close()
	writerWG.Wait()
	for _, writer := range assembled.Writers {
		writer.Flush()
		writer.Close()
	}

	if progress != nil {
		progress.Wait()
	}

	table := presenter.NewTable(config.NoColor)
	fmt.Print(table.Render(records))

	if runErr != nil && runErr != context.Canceled {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	if runErr == context.Canceled {
		fmt.Fprintf(os.Stderr, "Aborted: %d of %d domains resolved\n", len(records), countNonBlank(assembled.Domains))
		os.Exit(130)
	}
}

func countNonBlank(domains []string) int {
	n := 0
	for _, d := range domains {
		if strings.TrimSpace(d) != "" {
			n++
		}
	}
	return n
}
