package ossim

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"github.com/viant/ossim/extension"
	"github.com/viant/ossim/internal/clock"
	"github.com/viant/ossim/internal/idgen"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/service/allocation"
	"github.com/viant/ossim/service/dao/process"
	"github.com/viant/ossim/service/deadlock"
	"github.com/viant/ossim/service/dispatcher"
	"github.com/viant/ossim/service/event"
	"github.com/viant/ossim/service/input"
	"github.com/viant/ossim/service/metrics"
	"github.com/viant/ossim/service/report"
	"github.com/viant/ossim/service/sample"
	"github.com/viant/ossim/service/scheduler"
)

// Service owns the process collection and runs operations over it.
type Service struct {
	config            *Config
	logger            logrus.FieldLogger
	scope             tally.Scope
	policy            *policy.Policy
	reportURL         string
	eventService      *event.Service
	extensionServices []types.Service

	processes  *process.Service
	ids        idgen.Sequence
	dispatcher *dispatcher.Service
	input      *input.Service
	report     *report.Service
	publisher  *event.Publisher[*model.Envelope]

	mu       sync.Mutex
	last     *model.Envelope
	previous *model.Metrics
}

// Config returns the active configuration
func (s *Service) Config() *Config {
	return s.config
}

// Dispatcher returns the underlying operation dispatcher
func (s *Service) Dispatcher() *dispatcher.Service {
	return s.dispatcher
}

// AddProcess stores a ready copy of p under a newly assigned ID.
func (s *Service) AddProcess(ctx context.Context, p *model.Process) (*model.Process, error) {
	if p == nil {
		return nil, types.NewValidationError("", "process", "is nil")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, types.NewValidationError("", "processName", "is required")
	}
	record := p.Reset()
	record.Name = strings.TrimSpace(record.Name)
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ID = s.ids.Next()
	if err := s.processes.Save(ctx, record); err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// AddForm decodes raw form values validated for operation and stores the record.
func (s *Service) AddForm(ctx context.Context, values map[string]interface{}, operation string) (*model.Process, error) {
	op, err := model.ParseOperation(operation)
	if err != nil {
		return nil, err
	}
	record, err := s.input.FromForm(values, op)
	if err != nil {
		return nil, err
	}
	return s.AddProcess(ctx, record)
}

// Process returns a copy of the record with the supplied ID
func (s *Service) Process(ctx context.Context, id uint64) (*model.Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processes.Load(ctx, id)
}

// Processes returns copies of all records in insertion order
func (s *Service) Processes(ctx context.Context) (model.Processes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processes.List(ctx)
}

// RemoveProcess deletes the record with the supplied ID
func (s *Service) RemoveProcess(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processes.Delete(ctx, id)
}

// Clear removes every record together with the run history.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	count := s.processes.Len()
	s.processes.Clear()
	s.last = nil
	s.previous = nil
	s.mu.Unlock()

	if s.publisher == nil {
		return
	}
	anEvent := event.NewEvent[*model.Envelope](&event.Context{EventType: event.TypeCleared, Processes: count}, nil)
	if err := s.publisher.Publish(context.WithoutCancel(ctx), anEvent); err != nil {
		s.logger.WithError(err).Warn("failed to publish clear event")
	}
}

// LoadSample replaces the collection with the demonstration dataset for the
// operation's section.
func (s *Service) LoadSample(ctx context.Context, operation string) (model.Processes, error) {
	op, err := model.ParseOperation(operation)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processes.Clear()
	records := sample.Processes(op, s.ids.Next)
	for _, p := range records {
		if err = s.processes.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	return records.Clone(), nil
}

// Execute runs the operation over the current collection and replaces the
// stored records with their decorated copies. The service keeps its own copy
// of the returned envelope. On error the collection and the previous results
// are left untouched.
func (s *Service) Execute(ctx context.Context, operation string) (*model.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	processes, err := s.processes.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.policy != nil && policy.FromContext(ctx) == nil {
		ctx = policy.WithPolicy(ctx, s.policy)
	}
	envelope, err := s.dispatcher.Execute(ctx, operation, processes)
	if err != nil {
		return nil, err
	}
	for _, p := range envelope.Results {
		if p.ID == 0 {
			continue
		}
		if err = s.processes.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to store result of %v: %w", p.Name, err)
		}
	}
	if s.last != nil {
		s.previous = s.last.Metrics.Clone()
	}
	s.last = envelope.Clone()
	return envelope, nil
}

// Last returns a copy of the most recent successful run, nil before the first one
func (s *Service) Last() *model.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last.Clone()
}

// MetricChanges compares the last run with the one before it.
func (s *Service) MetricChanges() *metrics.Changes {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return metrics.Compare(nil, nil)
	}
	return metrics.Compare(&s.last.Metrics, s.previous)
}

// Export writes the current collection and the last run metrics as a YAML
// report and returns its URL.
func (s *Service) Export(ctx context.Context) (string, error) {
	if s.report == nil {
		return "", fmt.Errorf("report location is not configured")
	}
	s.mu.Lock()
	processes, err := s.processes.List(ctx)
	snapshot := &report.Snapshot{
		Processes: processes,
		Timestamp: clock.Now().UTC().Truncate(time.Millisecond),
	}
	if s.last != nil {
		snapshot.Operation = s.last.Operation
		snapshot.Metrics = s.last.Metrics.Clone()
	}
	s.mu.Unlock()
	if err != nil {
		return "", err
	}
	URL, err := s.report.Save(ctx, snapshot)
	if err != nil {
		return "", err
	}
	s.logger.WithFields(logrus.Fields{"url": URL, "processes": len(processes)}).Info("report exported")
	return URL, nil
}

// Reports lists exported report URLs
func (s *Service) Reports(ctx context.Context) ([]string, error) {
	if s.report == nil {
		return nil, fmt.Errorf("report location is not configured")
	}
	return s.report.List(ctx)
}

// LoadReport reads an exported report by URL or name
func (s *Service) LoadReport(ctx context.Context, URL string) (*report.Snapshot, error) {
	if s.report == nil {
		return nil, fmt.Errorf("report location is not configured")
	}
	return s.report.Load(ctx, URL)
}

// Close stops event listeners owned by the event service
func (s *Service) Close() {
	if s.eventService != nil {
		s.eventService.Close()
	}
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	if s.policy == nil {
		s.policy = policy.FromConfig(s.config.Policy)
	}
	if s.reportURL == "" {
		s.reportURL = s.config.Report.URL
	}
	if s.reportURL != "" {
		var err error
		if s.report, err = report.New(s.reportURL); err != nil {
			return err
		}
	}
	if s.eventService != nil {
		var err error
		if s.publisher, err = event.PublisherOf[*model.Envelope](s.eventService); err != nil {
			return err
		}
	}

	actions := extension.NewActions(scheduler.New(), allocation.New(), deadlock.New())
	for _, service := range s.extensionServices {
		actions.Register(service)
	}
	s.processes = process.New()
	s.input = input.New()
	s.dispatcher = dispatcher.New(
		dispatcher.WithConfig(s.config.dispatcher()),
		dispatcher.WithActions(actions),
		dispatcher.WithLogger(s.logger),
		dispatcher.WithMetricsScope(s.scope),
		dispatcher.WithPublisher(s.publisher),
	)
	return nil
}

// New creates a simulator service
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
