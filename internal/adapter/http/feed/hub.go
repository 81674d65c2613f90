package feed

import (
	"encoding/json"
	"log"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

const subscriberBuffer = 16

// Hub fans every recorded marketplace transaction out to live-feed
// subscribers. Publish never blocks the use cases: the broadcast channel is
// buffered and a subscriber that cannot keep up is dropped.

type Hub struct {
	register    chan *Subscriber
	unregister  chan *Subscriber
	broadcast   chan entities.Transaction
	subscribers map[*Subscriber]bool
}

var _ interfaces.IActivityPublisher = (*Hub)(nil)

// Subscriber receives marshalled transaction events on Events until the hub
// closes it (slow consumer) or Unsubscribe is called.

type Subscriber struct {
	events chan []byte
}

func (s *Subscriber) Events() <-chan []byte { return s.events }

func NewHub() *Hub {
	return &Hub{
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan entities.Transaction, 64),
		subscribers: make(map[*Subscriber]bool),
	}
}

// Run owns the subscriber set; all map access happens on this goroutine.
func (h *Hub) Run() {
	for {
		select {
		case s := <-h.register:
			h.subscribers[s] = true
		case s := <-h.unregister:
			if h.subscribers[s] {
				delete(h.subscribers, s)
				close(s.events)
			}
		case tx := <-h.broadcast:
			payload, err := json.Marshal(tx)
			if err != nil {
				log.Printf("[activity][hub] marshal failed tx_id=%s err=%v", tx.ID, err)
				continue
			}
			for s := range h.subscribers {
				select {
				case s.events <- payload:
				default:
					delete(h.subscribers, s)
					close(s.events)
				}
			}
		}
	}
}

// Publish hands a transaction to the fan-out loop without blocking the
// caller; if the feed is saturated the event is dropped, the audit log in
// the store remains authoritative.
func (h *Hub) Publish(t entities.Transaction) {
	select {
	case h.broadcast <- t:
	default:
		log.Printf("[activity][hub] broadcast full, dropping tx_id=%s", t.ID)
	}
}

func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{events: make(chan []byte, subscriberBuffer)}
	h.register <- s
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.unregister <- s
}
