package ossim

import (
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"github.com/viant/ossim/model/types"
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/service/event"
	"github.com/viant/ossim/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the simulator service.
type Option func(s *Service)

// WithConfig sets the simulator configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the logger shared by the dispatcher and event listeners
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetricsScope sets the tally scope runs are reported to
func WithMetricsScope(scope tally.Scope) Option {
	return func(s *Service) {
		s.scope = scope
	}
}

func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.eventService = service
	}
}

// WithPolicy sets the default run policy; a policy found in the Execute
// context takes precedence.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithReportURL sets the export location
func WithReportURL(URL string) Option {
	return func(s *Service) {
		s.reportURL = URL
	}
}

// WithExtensionServices registers engine services, replacing built-in
// engines with the same name.
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = append(s.extensionServices, services...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The first
// successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
