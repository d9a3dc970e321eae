package deadlock

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
)

// Name of the service as used by the dispatcher.
const Name = "deadlock"

// Input represents a detection request. When Matrices is nil and Derive is
// false the reference snapshot is used. Derived matrices default to the
// reference available vector.
type Input struct {
	Processes model.Processes
	Matrices  *model.Matrices
	Derive    bool
	Available model.Vector
}

// Output represents a detection result
type Output struct {
	Matrices *model.Matrices
	Result   *Result
	Results  model.Processes
}

// Service exposes deadlock detection
type Service struct{}

// New creates a deadlock service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        string(model.Detection),
			Description: "Reduces the allocation graph and reports deadlocked processes.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch model.Operation(strings.ToLower(name)) {
	case model.Detection:
		return s.detect, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) detect(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*Input)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	matrices := input.Matrices
	var err error
	switch {
	case matrices != nil:
	case input.Derive:
		available := input.Available
		if len(available) == 0 {
			available = Reference().Available
		}
		if matrices, err = FromProcesses(input.Processes, available); err != nil {
			return err
		}
	default:
		matrices = Reference()
	}
	result, err := Detect(matrices)
	if err != nil {
		return err
	}
	output.Matrices = matrices
	output.Result = result
	output.Results = Decorate(input.Processes, result)
	return nil
}
