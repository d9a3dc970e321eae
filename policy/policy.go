// Package policy provides an optional per-section gate that can be attached to
// a simulation run via context. Engines that do not embed a Policy in their
// context run every operation.

package policy

import (
	"context"
	"strings"
)

// Modes recognised by the dispatcher.
const (
	ModeAuto = "auto" // run automatically (default)
	ModeDeny = "deny" // block every run
)

// Policy restricts which sections (scheduling, memory, deadlock) or
// individual operation tags may run.
//
// A nil *Policy means "run everything" and is therefore the zero-cost
// default.
type Policy struct {
	Mode      string   // auto / deny (default = auto)
	AllowList []string // sections or operation tags (empty => all)
	BlockList []string // sections or operation tags
}

// Config represents the declarative, serialisable form of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a stored Config back to a runtime Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// IsAllowed evaluates Mode, BlockList and AllowList for the given section and
// operation tag. Entries match either value, case-insensitively.
func (p *Policy) IsAllowed(section, operation string) bool {
	if p == nil {
		return true
	}
	if strings.EqualFold(p.Mode, ModeDeny) {
		return false
	}

	// BlockList has priority.
	for _, b := range p.BlockList {
		if matches(b, section, operation) {
			return false
		}
	}

	if len(p.AllowList) == 0 {
		return true
	}
	for _, a := range p.AllowList {
		if matches(a, section, operation) {
			return true
		}
	}
	return false
}

func matches(entry, section, operation string) bool {
	entry = strings.TrimSpace(entry)
	return strings.EqualFold(entry, section) || strings.EqualFold(entry, operation)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy, nil when none was embedded.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
