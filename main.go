package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"skybound/server/internal/biome"
	"skybound/server/internal/powerup"
	"skybound/server/logging"
	"skybound/server/logging/sinks"
)

const writeWait = 10 * time.Second

func main() {
	configPath := flag.String("config", "skybound.yaml", "path to the server config file")
	flag.Parse()

	cfg, err := loadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	router, err := buildLogRouter(cfg)
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := router.Close(ctx); err != nil {
			log.Printf("close log router: %v", err)
		}
	}()

	registry := powerup.Default()
	catalog, err := biome.NewCatalog(registry)
	if err != nil {
		log.Fatalf("build biome catalog: %v", err)
	}
	if cfg.BiomeOverrides != "" {
		if err := catalog.LoadOverrides(cfg.BiomeOverrides); err != nil {
			log.Fatalf("load biome overrides: %v", err)
		}
	}

	hub := newHub(catalog, registry, router, cfg.Seed)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	http.HandleFunc("/biomes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, newBiomesMessage(hub.Biomes()))
	})

	http.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req clientMessage
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "malformed request", http.StatusBadRequest)
			return
		}
		world, seed, err := hub.Generate(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, newBlueprintMessage(seed, world))
	})

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade failed: %v", err)
			return
		}
		session := hub.Subscribe(conn)
		defer hub.Unsubscribe(session)

		if err := writeSocketJSON(conn, newBiomesMessage(hub.Biomes())); err != nil {
			return
		}

		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var msg clientMessage
			if err := json.Unmarshal(payload, &msg); err != nil {
				log.Printf("discarding malformed message from %s: %v", session, err)
				continue
			}

			switch msg.Type {
			case "generate":
				world, seed, err := hub.Generate(msg)
				if err != nil {
					if writeErr := writeSocketJSON(conn, newErrorMessage(err.Error())); writeErr != nil {
						return
					}
					continue
				}
				if err := writeSocketJSON(conn, newBlueprintMessage(seed, world)); err != nil {
					return
				}
			case "biomes":
				if err := writeSocketJSON(conn, newBiomesMessage(hub.Biomes())); err != nil {
					return
				}
			default:
				log.Printf("unknown message type %q from %s", msg.Type, session)
			}
		}
	})

	clientDir, err := resolveClientAssetsDir(cfg.ClientDir)
	if err != nil {
		log.Printf("static client disabled: %v", err)
	} else {
		http.Handle("/", http.FileServer(http.Dir(clientDir)))
	}

	log.Printf("server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func buildLogRouter(cfg serverConfig) (*logging.Router, error) {
	logCfg := cfg.loggingConfig()
	var named []logging.NamedSink
	if logCfg.HasSink("console") {
		named = append(named, logging.NamedSink{
			Name: "console",
			Sink: sinks.NewConsoleSink(os.Stdout, logCfg.Console),
		})
	}
	if logCfg.HasSink("json") {
		jsonSink, err := sinks.NewJSONSink(logCfg.JSON)
		if err != nil {
			return nil, err
		}
		named = append(named, logging.NamedSink{Name: "json", Sink: jsonSink})
	}
	return logging.NewRouter(nil, logCfg, named), nil
}

func writeJSON(w http.ResponseWriter, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func writeSocketJSON(conn *websocket.Conn, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}
