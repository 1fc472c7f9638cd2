package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	persistencepkg "github.com/agrilab/soilfert/internal/services/persistence"
	"github.com/agrilab/soilfert/pkg/rabbitmq"
)

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MQTT (RabbitMQ/MQTT) ---
	mqCfg := &rabbitmq.RabbitMQConfig{
		Host:     env("RABBITMQ_HOST", "localhost"),
		Port:     envInt("RABBITMQ_PORT", 1883),
		User:     env("RABBITMQ_USER", "guest"),
		Password: env("RABBITMQ_PASSWORD", "guest"),
		ClientID: env("MQTT_CLIENT_ID", "persistence-service"),
		Kind:     env("RABBITMQ_EXCHANGE_KIND", "topic"),
	}
	topic := env("MQTT_TOPIC", env("READING_SUB_TOPIC", "sample/reading/#"))

	mqClient, err := rabbitmq.NewRabbitMQConn(mqCfg, ctx)
	if err != nil {
		log.Fatalf("mqtt connect failed: %v", err)
	}
	consumer := rabbitmq.NewConsumer(mqClient, topic, nil)

	// --- InfluxDB ---
	influxURL := env("INFLUX_URL", "http://localhost:8086")
	influxToken := os.Getenv("INFLUX_TOKEN")
	influxCfg := persistencepkg.InfluxConfig{
		InfluxURL:    influxURL,
		InfluxToken:  influxToken,
		InfluxOrg:    env("INFLUX_ORG", "agrilab"),
		InfluxBucket: env("INFLUX_BUCKET", "soil-samples"),
		Measurement:  env("MEASUREMENT", "soil_sample"),
	}
	influxClient := influxdb2.NewClient(influxURL, influxToken)
	defer influxClient.Close()

	svc, err := persistencepkg.NewService(consumer, influxClient, influxCfg)
	if err != nil {
		log.Fatalf("persistence init failed: %v", err)
	}

	// --- HTTP mux (registers /healthz and /data/latest) ---
	mux := persistencepkg.NewHTTPMux(svc)
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ready": true})
	})

	httpPort := env("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("persistence HTTP listening on :%s", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	go svc.Start(ctx)

	<-ctx.Done()
	stop()

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shCtx)
	log.Println("persistence: shutdown complete")
}
