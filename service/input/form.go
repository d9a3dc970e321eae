package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
	"github.com/viant/structology/conv"
)

// Form represents raw process fields as entered by a user. Resource vectors
// stay textual until ParseVector reads them.
type Form struct {
	ProcessName        string `json:"processName,omitempty"`
	ArrivalTime        int    `json:"arrivalTime,omitempty"`
	BurstTime          int    `json:"burstTime,omitempty"`
	Priority           int    `json:"priority,omitempty"`
	Quantum            int    `json:"quantum,omitempty"`
	MemorySize         int    `json:"memorySize,omitempty"`
	ResourcesHeld      string `json:"resourcesHeld,omitempty"`
	ResourcesRequested string `json:"resourcesRequested,omitempty"`
}

var formFields = map[string]string{
	"processname":        "ProcessName",
	"arrivaltime":        "ArrivalTime",
	"bursttime":          "BurstTime",
	"priority":           "Priority",
	"quantum":            "Quantum",
	"memorysize":         "MemorySize",
	"resourcesheld":      "ResourcesHeld",
	"resourcesrequested": "ResourcesRequested",
}

// Service converts raw form values into process records.
type Service struct {
	converter *conv.Converter
}

// New creates an input service
func New() *Service {
	options := conv.DefaultOptions()
	options.IgnoreUnmapped = true
	return &Service{converter: conv.NewConverter(options)}
}

// Decode converts a raw value map into a Form. Keys match field names case
// insensitively; numeric values may be numbers or numeric text.
func (s *Service) Decode(values map[string]interface{}) (*Form, error) {
	normalized := make(map[string]interface{}, len(values))
	for key, value := range values {
		field, ok := formFields[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			continue
		}
		switch field {
		case "ProcessName", "ResourcesHeld", "ResourcesRequested":
			normalized[field] = strings.TrimSpace(fmt.Sprint(value))
		default:
			number, err := toInt(value)
			if err != nil {
				return nil, types.NewValidationError(fmt.Sprint(values["processName"]), key, err.Error())
			}
			normalized[field] = number
		}
	}
	form := &Form{}
	if err := s.converter.Convert(normalized, form); err != nil {
		return nil, fmt.Errorf("failed to decode form: %w", err)
	}
	return form, nil
}

// FromForm builds a validated process record for the operation from raw
// form values. The returned record carries no ID.
func (s *Service) FromForm(values map[string]interface{}, operation model.Operation) (*model.Process, error) {
	form, err := s.Decode(values)
	if err != nil {
		return nil, err
	}
	return form.Process(operation)
}

// Process converts the form into a ready process record validated for operation.
func (f *Form) Process(operation model.Operation) (*model.Process, error) {
	ret := model.NewProcess(0, strings.TrimSpace(f.ProcessName))
	ret.ArrivalTime = f.ArrivalTime
	ret.BurstTime = f.BurstTime
	ret.Priority = f.Priority
	ret.Quantum = f.Quantum
	ret.MemorySize = f.MemorySize
	var err error
	if ret.ResourcesHeld, err = ParseVector(f.ResourcesHeld); err != nil {
		return nil, types.NewValidationError(ret.Name, "resourcesHeld", err.Error())
	}
	if ret.ResourcesRequested, err = ParseVector(f.ResourcesRequested); err != nil {
		return nil, types.NewValidationError(ret.Name, "resourcesRequested", err.Error())
	}
	if err = ret.Validate(operation.Family(), operation); err != nil {
		return nil, err
	}
	return ret, nil
}

func toInt(value interface{}) (int, error) {
	switch actual := value.(type) {
	case nil:
		return 0, nil
	case int:
		return actual, nil
	case int64:
		return int(actual), nil
	case float64:
		if math.IsNaN(actual) || actual != math.Trunc(actual) {
			return 0, fmt.Errorf("expected whole number, got %v", actual)
		}
		return int(actual), nil
	case string:
		text := strings.TrimSpace(actual)
		if text == "" {
			return 0, nil
		}
		if ret, err := strconv.Atoi(text); err == nil {
			return ret, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", actual)
		}
		return toInt(f)
	}
	return 0, fmt.Errorf("unsupported value %T", value)
}
