// Package grpc holds the gRPC transport handler. The API itself is served
// over HTTP; the gRPC listener exposes the standard health service as a
// process liveness check. It does not probe the store.
package grpc

import (
	"context"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ServiceName is the health-checked service name of the API.
const ServiceName = "beatfluencer.api"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall and the API service
// report SERVING until [Handler.Shutdown] is called.
func NewHandler(logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING so that in-flight watchers
// observe the stop before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging logs every unary call with its duration and status code,
// attaching a request logger that carries the caller's trace id.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	l := h.logger
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(traceIDMetadataKey); len(ids) > 0 {
			l = l.WithTraceID(ids[0])
		}
	}
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := next(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
