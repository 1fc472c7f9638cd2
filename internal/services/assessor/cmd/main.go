package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	pb "github.com/agrilab/soilfert/grpc/gen/go/fertility"
	"github.com/agrilab/soilfert/internal/fertility"
	"github.com/agrilab/soilfert/internal/services/assessor"
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
	// ---- ENV ----
	rmqc := &rabbitmq.RabbitMQConfig{
		Host:     envStr("RABBITMQ_HOST", "localhost"),
		Port:     envInt("RABBITMQ_PORT", 1883),
		User:     envStr("RABBITMQ_USER", "guest"),
		Password: envStr("RABBITMQ_PASSWORD", "guest"),
		ClientID: envStr("RABBITMQ_CLIENTID", "assessor-service"),
		Kind:     envStr("RABBITMQ_EXCHANGE_KIND", "topic"),
	}
	subTopic := envStr("AGGREGATED_SUB_TOPIC", "sample/aggregated")
	eventTmpl := envStr("EVENT_ASSESSMENT_TEMPLATE", "event/fertilityAssessment/{field}/{sample}")
	grpcPort := envStr("GRPC_PORT", "50051")
	httpPort := envStr("METRICS_PORT", "8080")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- MQTT ----
	client, err := rabbitmq.NewRabbitMQConn(rmqc, ctx)
	if err != nil {
		log.Fatalf("MQTT connect error: %v", err)
	}
	consumer := rabbitmq.NewConsumer(client, subTopic, nil)
	publisher := rabbitmq.NewPublisher(client, eventTmpl)

	// ---- Engine (deployment defaults; crop overrides come from the payload) ----
	engine, err := fertility.New(nil)
	if err != nil {
		log.Fatalf("engine init: %v", err)
	}

	// ---- Metrics ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := assessor.NewMetrics(reg)

	svc, err := assessor.New(consumer, publisher, engine, eventTmpl, metrics)
	if err != nil {
		log.Fatalf("assessor init: %v", err)
	}
	go svc.Start(ctx)

	// ---- gRPC server ----
	addr := ":" + grpcPort
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("listen %s: %v", addr, err)
	}
	grpcServer := grpc.NewServer()
	pb.RegisterFertilityServiceServer(grpcServer, assessor.NewGrpcHandler(engine, metrics))
	go func() {
		log.Printf("assessor gRPC %s; sub '%s'; event template '%s'", addr, subTopic, eventTmpl)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("gRPC serve error: %v", err)
		}
	}()

	// ---- HTTP /metrics ----
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })
	srv := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("assessor HTTP listening on :%s", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	// ---- graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	<-sigc
	log.Println("shutting down...")
	cancel()
	grpcServer.GracefulStop()
	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
