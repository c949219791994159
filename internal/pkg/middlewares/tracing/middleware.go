package tracing

import (
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"assignment-service/internal/pkg/middlewares/request_id"
	"assignment-service/internal/pkg/middlewares/route"
)

const tracerName = "assignment-service/http"

// Middleware открывает span на каждый запрос. Имя span - метод и шаблон маршрута.
func Middleware(provider trace.TracerProvider) func(http.Handler) http.Handler {
	tracer := provider.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerPath := route.Template(r)

			ctx, span := tracer.Start(r.Context(), r.Method+" "+handlerPath,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("http.route", handlerPath),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			if requestID := request_id.FromContext(ctx); requestID != "" {
				span.SetAttributes(attribute.String("request.id", requestID))
			}

			rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.response.status_code", rw.statusCode))
			if rw.statusCode >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, strconv.Itoa(rw.statusCode))
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
