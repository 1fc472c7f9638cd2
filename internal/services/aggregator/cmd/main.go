package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agrilab/soilfert/internal/services/aggregator"
	"github.com/agrilab/soilfert/pkg/rabbitmq"
)

func envStr(key, def string) string {
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
	cfg := &rabbitmq.RabbitMQConfig{
		Host:     envStr("RABBITMQ_HOST", "localhost"),
		Port:     envInt("RABBITMQ_PORT", 1883),
		User:     envStr("RABBITMQ_USER", "guest"),
		Password: envStr("RABBITMQ_PASSWORD", "guest"),
		ClientID: envStr("RABBITMQ_CLIENTID", "sampleAggregator1"),
		Kind:     envStr("RABBITMQ_EXCHANGE_KIND", "topic"),
	}
	subTopic := envStr("READING_SUB_TOPIC", "sample/reading/#")
	pubTopic := envStr("AGGREGATED_PUB_TOPIC", "sample/aggregated")
	interval := time.Duration(envInt("AGGREGATION_INTERVAL_SEC", 60)) * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := rabbitmq.NewRabbitMQConn(cfg, ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MQTT broker: %v", err)
	}

	publisher := rabbitmq.NewPublisher(client, pubTopic)
	consumer := rabbitmq.NewConsumer(client, subTopic, nil)

	svc := aggregator.NewSampleAggregatorService(consumer, publisher, pubTopic, interval)

	log.Println("Sample Aggregator service is running...")
	svc.Start(ctx)
}
