package employee

import (
	"errors"
	"log/slog"

	"github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/catalog"
)

type RepositoryAPI interface {
	List(page catalog.Page) ([]Employee, int64, error)
	GetByID(id int64) (*Employee, error)
	Create(e *Employee) error
	Update(id int64, e *Employee) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(page catalog.Page) ([]Employee, catalog.Meta, error) {
	rows, total, err := s.repo.List(page)
	if err != nil {
		return nil, catalog.Meta{}, err
	}
	return rows, catalog.NewMeta(total, page), nil
}

func (s *Service) GetByID(id int64) (*Employee, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Create(dto EmployeeDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	e := dto.ToModel()
	if err := s.repo.Create(e); err != nil {
		return 0, err
	}

	s.logger.Info("employee created", "id", e.ID, "full_name", e.FullName)
	return e.ID, nil
}

func (s *Service) Update(id int64, dto EmployeeDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(id, dto.ToModel()); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return internal.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return internal.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}
