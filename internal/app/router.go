package app

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"assignment-service/internal/handlers/rest/assignment_put"
	"assignment-service/internal/handlers/rest/healthcheck_head"
	"assignment-service/internal/handlers/rest/last_delivery_time_get"
	"assignment-service/internal/handlers/rest/order_delete"
	"assignment-service/internal/handlers/rest/order_get"
	"assignment-service/internal/handlers/rest/order_post"
	"assignment-service/internal/handlers/rest/orders_after_time_count_get"
	"assignment-service/internal/handlers/rest/orders_get"
	"assignment-service/internal/handlers/rest/partner_delete"
	"assignment-service/internal/handlers/rest/partner_get"
	"assignment-service/internal/handlers/rest/partner_order_count_get"
	"assignment-service/internal/handlers/rest/partner_orders_get"
	"assignment-service/internal/handlers/rest/partner_post"
	"assignment-service/internal/handlers/rest/ping_get"
	"assignment-service/internal/handlers/rest/unassigned_count_get"
	"assignment-service/internal/pkg/config"
	"assignment-service/internal/pkg/middlewares/graceful_shutdown"
	"assignment-service/internal/pkg/middlewares/metrics"
	"assignment-service/internal/pkg/middlewares/rate_limiter"
	"assignment-service/internal/pkg/middlewares/request_id"
	"assignment-service/internal/pkg/middlewares/timeout"
	"assignment-service/internal/pkg/middlewares/tracing"
	"assignment-service/pkg/logger"
	"assignment-service/pkg/token_bucket"
)

func NewRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *Application,
	cfg config.HTTPServer,
	tracerProvider trace.TracerProvider,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(tracing.Middleware(tracerProvider))
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, app.Registry, isShuttingDown)).Methods("HEAD", "GET")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	orders := router.PathPrefix("/orders").Subrouter()

	orders.Handle("/add-order", order_post.New(log, app.OrderService)).Methods("POST")
	orders.Handle("/add-partner/{partnerId}", partner_post.New(log, app.PartnerService)).Methods("POST")
	orders.Handle("/add-order-partner-pair", assignment_put.New(log, app.OrderService)).Methods("PUT")

	orders.Handle("/get-order-by-id/{orderId}", order_get.New(log, app.OrderService)).Methods("GET")
	orders.Handle("/get-partner-by-id/{partnerId}", partner_get.New(log, app.PartnerService)).Methods("GET")
	orders.Handle("/get-order-count-by-partner-id/{partnerId}", partner_order_count_get.New(log, app.PartnerService)).Methods("GET")
	orders.Handle("/get-orders-by-partner-id/{partnerId}", partner_orders_get.New(log, app.PartnerService)).Methods("GET")
	orders.Handle("/get-all-orders", orders_get.New(log, app.OrderService)).Methods("GET")
	orders.Handle("/get-count-of-unassigned-orders", unassigned_count_get.New(log, app.OrderService)).Methods("GET")
	orders.Handle("/get-count-of-orders-left-after-given-time/{time}/{partnerId}", orders_after_time_count_get.New(log, app.PartnerService)).Methods("GET")
	orders.Handle("/get-last-delivery-time/{partnerId}", last_delivery_time_get.New(log, app.PartnerService)).Methods("GET")

	orders.Handle("/delete-partner-by-id/{partnerId}", partner_delete.New(log, app.PartnerService)).Methods("DELETE")
	orders.Handle("/delete-order-by-id/{orderId}", order_delete.New(log, app.OrderService)).Methods("DELETE")

	return router
}
