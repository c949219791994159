package main

import (
	"bytes"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Requests sent to assignment-service",
	}, []string{"operation", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Request duration as seen by the generator",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"operation"})
)

type generator struct {
	client   *http.Client
	target   string
	partners int
	nextID   int
}

func (g *generator) do(operation, method, path string, body []byte) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequest(method, g.target+path, bytes.NewReader(body))
	if err != nil {
		requestsTotal.WithLabelValues(operation, "build_error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(operation, "transport_error").Inc()
		return
	}
	_ = resp.Body.Close()
	requestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
}

func (g *generator) partnerID() string {
	return fmt.Sprintf("P%d", rand.IntN(g.partners)+1)
}

// step выполняет одну итерацию: новый заказ, назначение и пару чтений.
func (g *generator) step() {
	g.nextID++
	orderID := fmt.Sprintf("O%d", g.nextID)
	deliveryTime := fmt.Sprintf("%02d:%02d", rand.IntN(24), rand.IntN(60))

	g.do("add_order", http.MethodPost, "/orders/add-order",
		fmt.Appendf(nil, `{"orderId":%q,"deliveryTime":%q}`, orderID, deliveryTime))

	partnerID := g.partnerID()
	g.do("assign", http.MethodPut, "/orders/add-order-partner-pair",
		fmt.Appendf(nil, `{"orderId":%q,"partnerId":%q}`, orderID, partnerID))

	g.do("partner_orders", http.MethodGet, "/orders/get-orders-by-partner-id/"+partnerID, nil)
	g.do("orders_after_time", http.MethodGet, "/orders/get-count-of-orders-left-after-given-time/12:00/"+partnerID, nil)
	g.do("last_delivery_time", http.MethodGet, "/orders/get-last-delivery-time/"+partnerID, nil)
	g.do("unassigned_count", http.MethodGet, "/orders/get-count-of-unassigned-orders", nil)

	if rand.IntN(10) == 0 {
		g.do("delete_order", http.MethodDelete, "/orders/delete-order-by-id/"+orderID, nil)
	}
}

func main() {
	target := pflag.String("target", "http://localhost:8080", "assignment-service base URL")
	partners := pflag.Int("partners", 10, "number of partners to register")
	interval := pflag.Duration("interval", 100*time.Millisecond, "pause between iterations")
	metricsAddr := pflag.String("metrics-addr", ":2112", "address for the generator's own /metrics")
	pflag.Parse()

	g := &generator{
		client:   &http.Client{Timeout: 5 * time.Second},
		target:   *target,
		partners: *partners,
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		server := &http.Server{Addr: *metricsAddr, ReadHeaderTimeout: 5 * time.Second}
		if err := server.ListenAndServe(); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}()

	for i := 1; i <= g.partners; i++ {
		g.do("add_partner", http.MethodPost, fmt.Sprintf("/orders/add-partner/P%d", i), nil)
	}

	for {
		g.step()
		time.Sleep(*interval)
	}
}
