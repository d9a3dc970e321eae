package extension

import (
	"fmt"
	"sort"
	"sync"

	"github.com/viant/ossim/model/types"
)

// Actions provides engine service registry
type Actions struct {
	services map[string]types.Service
	mux      sync.RWMutex
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Register registers a service
func (s *Actions) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.services[service.Name()] = service
}

// Names returns registered service names in sorted order
func (s *Actions) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret := make([]string, 0, len(s.services))
	for name := range s.services {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Method resolves service method executable and signature
func (s *Actions) Method(service, method string) (types.Executable, *types.Signature, error) {
	aService := s.Lookup(service)
	if aService == nil {
		return nil, nil, fmt.Errorf("service %v not found", service)
	}
	signature := aService.Methods().Lookup(method)
	if signature == nil {
		return nil, nil, types.NewMethodNotFoundError(service + "." + method)
	}
	executable, err := aService.Method(method)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find method %v for service %v: %w", method, service, err)
	}
	return executable, signature, nil
}

// NewActions creates a new action registry
func NewActions(services ...types.Service) *Actions {
	ret := &Actions{
		services: make(map[string]types.Service),
	}
	for _, service := range services {
		if service != nil {
			ret.Register(service)
		}
	}
	return ret
}
