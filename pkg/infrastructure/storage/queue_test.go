package storage

import (
	"testing"

	"github.com/domainscout/domainscout/pkg/domain/entity"
)

func TestResultQueueSendReceive(t *testing.T) {
	queue := NewResultQueue(4)

	sent := []*entity.ResultRecord{
		{Domain: "one.com", Classification: entity.ClassificationAvailable},
		{Domain: "two.com", Classification: entity.ClassificationRegistered},
	}
	for _, record := range sent {
		queue.Send(record)
	}
	queue.Close()

	for i, want := range sent {
		got, ok := queue.Receive()
		if !ok {
			t.Fatalf("Receive() #%d closed early", i)
		}
		if got.Domain != want.Domain {
			t.Errorf("Receive() #%d = %q, want %q", i, got.Domain, want.Domain)
		}
	}

	if _, ok := queue.Receive(); ok {
		t.Error("Receive() after drain = true, want false")
	}
}

func TestResultQueueSendAfterClose(t *testing.T) {
	queue := NewResultQueue(1)
	queue.Close()

	// Must not panic, the record is dropped.
	queue.Send(&entity.ResultRecord{Domain: "late.com"})

	if _, ok := queue.Receive(); ok {
		t.Error("Receive() on closed empty queue = true, want false")
	}
}

func TestResultQueueDoubleClose(t *testing.T) {
	queue := NewResultQueue(1)
	queue.Close()
	queue.Close()
}
