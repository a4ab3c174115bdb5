package events

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEventBus(t *testing.T) {
	eventBus := NewEventBus()

	id, eventChan := eventBus.Subscribe()

	// Verify subscription count
	if count := eventBus.GetTotalSubscriptions(); count != 1 {
		t.Errorf("Expected 1 subscriber, got %d", count)
	}
	if !eventBus.HasSubscriber(id) {
		t.Error("Expected subscriber to exist")
	}

	event := NewLowBalanceAlert("student1", decimal.RequireFromString("3.50"))

	// Publish event in goroutine to avoid blocking
	go func() {
		eventBus.Publish(event)
	}()

	// Wait for event
	select {
	case receivedEvent := <-eventChan:
		if receivedEvent.Type() != EventLowBalanceAlert {
			t.Errorf("Expected LowBalanceAlert, got %s", receivedEvent.Type())
		}
		if receivedEvent.ParticipantID() != "student1" {
			t.Errorf("Expected participant student1, got %s", receivedEvent.ParticipantID())
		}
	case <-time.After(1 * time.Second):
		t.Error("Timeout waiting for event")
	}

	// Test unsubscribe
	if !eventBus.Unsubscribe(id) {
		t.Error("Expected unsubscribe to succeed")
	}
	if count := eventBus.GetTotalSubscriptions(); count != 0 {
		t.Errorf("Expected 0 subscribers after unsubscribe, got %d", count)
	}
	if eventBus.Unsubscribe(id) {
		t.Error("Expected second unsubscribe to fail")
	}
}

func TestLedgerEvents(t *testing.T) {
	alert := NewLowBalanceAlert("student1", decimal.RequireFromString("4"))
	if alert.Type() != "LowBalanceAlert" {
		t.Errorf("Expected LowBalanceAlert, got %s", alert.Type())
	}
	if alert.ParticipantID() != "student1" {
		t.Errorf("Expected participant student1, got %s", alert.ParticipantID())
	}
	if !alert.Balance().Equal(decimal.RequireFromString("4")) {
		t.Errorf("Expected balance 4, got %s", alert.Balance())
	}
	if alert.Timestamp().IsZero() {
		t.Error("Expected timestamp to be set")
	}

	breach := NewTxnThresholdBreach("vendor1", decimal.RequireFromString("150"))
	if breach.Type() != "TxnThresholdBreach" {
		t.Errorf("Expected TxnThresholdBreach, got %s", breach.Type())
	}
	if breach.ParticipantID() != "vendor1" {
		t.Errorf("Expected participant vendor1, got %s", breach.ParticipantID())
	}
	if !breach.Amount().Equal(decimal.RequireFromString("150")) {
		t.Errorf("Expected amount 150, got %s", breach.Amount())
	}
}

func TestEventBusFullChannelDoesNotBlock(t *testing.T) {
	eventBus := NewEventBus()
	_, ch := eventBus.Subscribe()

	// Fill the buffer past capacity; Publish must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 60; i++ {
			eventBus.Publish(NewLowBalanceAlert("p", decimal.Zero))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber channel")
	}

	// drain what was buffered
	if len(ch) == 0 {
		t.Error("Expected buffered events")
	}
}
