package repository

import "github.com/domainscout/domainscout/pkg/domain/entity"

// ResultQueue carries completed records from the workers to whoever
// streams them out.
type ResultQueue interface {
	// Send sends a record to the queue.
	Send(record *entity.ResultRecord)
	// Receive receives a record from the queue.
	Receive() (*entity.ResultRecord, bool)
	// Close closes the queue.
	Close()
}

// ResultWriter serializes result records. The core guarantees stable
// field names and order; the concrete format is the caller's choice.
type ResultWriter interface {
	// Write writes a single record.
	Write(record *entity.ResultRecord) error
	// Flush ensures all buffered data is written.
	Flush() error
	// Close closes the writer.
	Close() error
}
