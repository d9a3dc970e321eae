package process

import (
	"context"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/service/dao"
	"github.com/viant/ossim/service/dao/criteria"
	"github.com/viant/ossim/service/dao/store"
)

// Service implements an in-memory, ordered store for process records. All
// API methods work with copies so that callers never share a record.
type Service struct {
	store *store.MemoryStore[uint64, model.Process]
}

var _ dao.Service[uint64, model.Process] = (*Service)(nil)

func (s *Service) Save(ctx context.Context, p *model.Process) error {
	if p == nil {
		return dao.ErrNilEntity
	}
	if p.ID == 0 {
		return dao.ErrInvalidID
	}
	return s.store.Save(ctx, p.Clone())
}

func (s *Service) Load(ctx context.Context, id uint64) (*model.Process, error) {
	if id == 0 {
		return nil, dao.ErrInvalidID
	}
	p, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return dao.ErrInvalidID
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Process, error) {
	records, err := s.store.List(ctx, parameters...)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Process, len(records))
	for i, p := range records {
		out[i] = p.Clone()
	}
	return out, nil
}

// Len returns the number of stored records.
func (s *Service) Len() int {
	return s.store.Len()
}

// Clear removes every record.
func (s *Service) Clear() {
	s.store.Clear()
}

func New() *Service {
	return &Service{
		store: store.NewMemoryStore[uint64, model.Process](
			func(p *model.Process) uint64 { return p.ID },
			store.WithFilter[uint64, model.Process](func(p *model.Process, parameters []*dao.Parameter) bool {
				return criteria.FilterByStatus(string(p.Status), parameters) && criteria.FilterByName(p.Name, parameters)
			}),
		),
	}
}
