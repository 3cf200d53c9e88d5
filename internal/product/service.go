package product

import (
	"errors"
	"log/slog"

	"github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/catalog"
)

type RepositoryAPI interface {
	List(page catalog.Page) ([]Product, int64, error)
	GetByID(id int64) (*Product, error)
	Create(p *Product) error
	Update(id int64, p *Product) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(page catalog.Page) ([]Product, catalog.Meta, error) {
	rows, total, err := s.repo.List(page)
	if err != nil {
		return nil, catalog.Meta{}, err
	}
	return rows, catalog.NewMeta(total, page), nil
}

func (s *Service) GetByID(id int64) (*Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, internal.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(dto ProductDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	p := dto.ToModel()
	if err := s.repo.Create(p); err != nil {
		return 0, err
	}

	s.logger.Info("product created", "id", p.ID, "name", p.Name)
	return p.ID, nil
}

func (s *Service) Update(id int64, dto ProductDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(id, dto.ToModel()); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return internal.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return internal.ErrProductNotFound
		}
		return err
	}
	return nil
}
