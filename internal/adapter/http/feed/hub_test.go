package feed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

func recvEvent(t *testing.T, s *Subscriber) []byte {
	t.Helper()
	select {
	case payload, ok := <-s.Events():
		if !ok {
			t.Fatalf("events channel closed unexpectedly")
		}
		return payload
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return nil
}

func TestHub_PublishFansOut(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := hub.Subscribe()
	second := hub.Subscribe()
	defer hub.Unsubscribe(second)

	price := decimal.NewFromInt(5)
	hub.Publish(entities.Transaction{
		ID:        "tx-1",
		Type:      entities.TransactionTypeSale,
		NFTID:     "nft-1",
		FromID:    "user-1",
		ToID:      "user-2",
		Price:     &price,
		Signature: "sig-1",
		Timestamp: time.Now().UTC(),
	})

	for _, s := range []*Subscriber{first, second} {
		var got entities.Transaction
		if err := json.Unmarshal(recvEvent(t, s), &got); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if got.ID != "tx-1" || got.Type != entities.TransactionTypeSale {
			t.Fatalf("unexpected event: %+v", got)
		}
	}

	hub.Unsubscribe(first)
	select {
	case _, ok := <-first.Events():
		if ok {
			t.Fatalf("expected closed channel after unsubscribe")
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for channel close")
	}
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := hub.Subscribe()

	// Never drain: once the buffer is full the hub must evict the
	// subscriber instead of stalling the fan-out loop.
	for i := 0; i <= subscriberBuffer; i++ {
		hub.Publish(entities.Transaction{ID: "tx-flood", Type: entities.TransactionTypeList, NFTID: "nft-1", Signature: "sig", Timestamp: time.Now().UTC()})
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-slow.Events():
			if !ok {
				return // dropped, channel closed
			}
		case <-deadline:
			t.Fatalf("slow subscriber was never dropped")
		}
	}
}

func TestHub_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(entities.Transaction{ID: "tx-noop", Type: entities.TransactionTypeMint, NFTID: "nft-1", Signature: "sig", Timestamp: time.Now().UTC()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked with no subscribers")
	}
}
