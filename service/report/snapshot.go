package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/viant/ossim/model"
	"gopkg.in/yaml.v3"
)

// Snapshot is the exported state of a simulator session.
type Snapshot struct {
	Operation model.Operation `json:"operation" yaml:"operation"`
	Processes model.Processes `json:"processes" yaml:"processes"`
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`
	Metrics   *model.Metrics  `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// Encode renders the snapshot as YAML with keys in declaration order.
func Encode(snapshot *Snapshot) ([]byte, error) {
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(snapshot); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Decode parses a YAML snapshot.
func Decode(data []byte) (*Snapshot, error) {
	ret := &Snapshot{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return ret, nil
}

// Name returns the report file name for the supplied time.
func Name(at time.Time) string {
	return fmt.Sprintf("os-analytics-report-%d.yaml", at.UnixMilli())
}
