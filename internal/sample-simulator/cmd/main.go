package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agrilab/soilfert/internal/model/entities"
	simulator "github.com/agrilab/soilfert/internal/sample-simulator"
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
	// define flags
	fieldsPath := flag.String("fields", "/app/config/fields-config.json", "field topology JSON")
	clientID := flag.String("client-id", "samplePublisher1", "MQTT client ID")
	interval := flag.Duration("interval", 30*time.Second, "publish interval")
	replicates := flag.Int("replicates", 2, "lab replicates per tick")
	topicTmpl := flag.String("topic", "sample/reading/{field}/{sample}", "publish topic template")
	flag.Parse()

	cfg := &rabbitmq.RabbitMQConfig{
		Host:     envStr("RABBITMQ_HOST", "localhost"),
		Port:     envInt("RABBITMQ_PORT", 1883),
		User:     envStr("RABBITMQ_USER", "guest"),
		Password: envStr("RABBITMQ_PASSWORD", "guest"),
		ClientID: *clientID,
		Kind:     envStr("RABBITMQ_EXCHANGE_KIND", "topic"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := rabbitmq.NewRabbitMQConn(cfg, ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MQTT broker: %v", err)
	}

	fields, err := loadFields(*fieldsPath)
	if err != nil {
		log.Fatalf("load fields config: %v", err)
	}

	var wg sync.WaitGroup
	seed := time.Now().UnixNano()
	for _, f := range fields {
		for i := range f.Points {
			p := f.Points[i]
			p.FieldID = f.ID
			gen := simulator.NewDataGenerator(f.CropType, seed)
			seed++
			sim := simulator.NewSampleSimulator(
				rabbitmq.NewPublisher(client, *topicTmpl),
				gen, &p, f.CropType, *topicTmpl, *replicates,
			)
			wg.Add(1)
			go func() {
				defer wg.Done()
				sim.Start(ctx, *interval)
			}()
			log.Printf("simulator: started field=%s sample=%s crop=%s", f.ID, p.ID, f.CropType)
		}
	}
	wg.Wait()
}

func loadFields(path string) ([]entities.Field, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fields []entities.Field
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
