package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"skybound/server/internal/biome"
	"skybound/server/internal/blueprint"
	"skybound/server/internal/powerup"
	"skybound/server/internal/worldgen"
	"skybound/server/logging"
)

const (
	eventClientSubscribed   logging.EventType = "preview.client_subscribed"
	eventClientUnsubscribed logging.EventType = "preview.client_unsubscribed"
)

// Hub owns the preview subscribers and serves blueprint generation requests.
// Generation itself is stateless; the hub only adds the biome catalog, the
// power-up registry, and connection bookkeeping on top.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]*subscriber

	catalog     *biome.Catalog
	registry    powerup.Registry
	publisher   logging.Publisher
	defaultSeed string
}

// Each connection is read and written by its own handler goroutine, so the
// subscriber needs no per-connection write lock.
type subscriber struct {
	conn *websocket.Conn
}

func newHub(catalog *biome.Catalog, registry powerup.Registry, publisher logging.Publisher, defaultSeed string) *Hub {
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	return &Hub{
		subscribers: make(map[string]*subscriber),
		catalog:     catalog,
		registry:    registry,
		publisher:   publisher,
		defaultSeed: defaultSeed,
	}
}

// Subscribe registers a connection and returns its session id.
func (h *Hub) Subscribe(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.subscribers[id] = &subscriber{conn: conn}
	h.mu.Unlock()

	h.publisher.Publish(context.Background(), logging.Event{
		Type:     eventClientSubscribed,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryNetwork,
		Extra:    map[string]any{"session": id},
	})
	return id
}

// Unsubscribe drops a session and closes its connection.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()

	if !ok {
		return
	}
	sub.conn.Close()
	h.publisher.Publish(context.Background(), logging.Event{
		Type:     eventClientUnsubscribed,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryNetwork,
		Extra:    map[string]any{"session": id},
	})
}

// Biomes lists the generatable biome names.
func (h *Hub) Biomes() []string {
	return h.catalog.Names()
}

// Generate resolves the request against the catalog and produces one
// blueprint. An empty seed draws a fresh one so every request yields a new
// level; the seed is returned so the client can reproduce it.
func (h *Hub) Generate(req clientMessage) (*blueprint.World, string, error) {
	def, err := h.catalog.Lookup(req.Biome)
	if err != nil {
		return nil, "", err
	}

	seed := req.Seed
	if seed == "" {
		seed = h.defaultSeed
	}
	if seed == "" {
		seed = uuid.NewString()
	}

	gen, err := worldgen.New(def, h.registry, seed, worldgen.Deps{Publisher: h.publisher})
	if err != nil {
		return nil, "", fmt.Errorf("build generator: %w", err)
	}
	return gen.GenerateWorld(req.Width, req.Height), seed, nil
}
