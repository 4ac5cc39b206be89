package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/venue-insight/internal/config"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

const serviceNamespace = "venue-insight"

func startTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	dsn := strings.TrimSpace(cfg.UptraceDSN)
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return noop, nil
	case dsn == "":
		logger.Info("tracing disabled", "reason", "UPTRACE_DSN empty")
		return noop, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(
			attribute.String("service.namespace", serviceNamespace),
		),
	)

	logger.Info("tracing enabled", "exporter", "uptrace", "service", cfg.ServiceName)
	return uptrace.Shutdown, nil
}
