package dispatcher

import (
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"github.com/viant/ossim/extension"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/service/event"
)

// Option is used to customise the dispatcher instance.
type Option func(*Service)

// WithConfig overrides run parameters.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithActions overrides the engine registry.
func WithActions(actions *extension.Actions) Option {
	return func(s *Service) {
		s.actions = actions
	}
}

// WithLogger sets the run logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetricsScope sets the tally scope runs are reported to.
func WithMetricsScope(scope tally.Scope) Option {
	return func(s *Service) {
		s.metrics = NewMetrics(scope)
	}
}

// WithPublisher sets the publisher receiving run events.
func WithPublisher(publisher *event.Publisher[*model.Envelope]) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}
