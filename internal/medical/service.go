package medical

import (
	"errors"
	"log/slog"

	"github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/catalog"
)

type RepositoryAPI interface {
	List(page catalog.Page) ([]Good, int64, error)
	GetByID(id int64) (*Good, error)
	Create(g *Good) error
	Update(id int64, g *Good) error
	Delete(id int64) error
}

// Service serves one medical catalog kind. Two instances run side by side,
// one for medical goods and one for medicines.
type Service struct {
	repo     RepositoryAPI
	kind     string
	notFound *internal.AppError
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, kind string, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		kind:     kind,
		notFound: internal.ErrMedicalGoodNotFound,
		logger:   logger,
	}
}

func (s *Service) Kind() string {
	return s.kind
}

func (s *Service) List(page catalog.Page) ([]Good, catalog.Meta, error) {
	rows, total, err := s.repo.List(page)
	if err != nil {
		return nil, catalog.Meta{}, err
	}
	return rows, catalog.NewMeta(total, page), nil
}

func (s *Service) GetByID(id int64) (*Good, error) {
	g, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, s.notFound
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) Create(dto GoodDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	g := dto.ToModel()
	if err := s.repo.Create(g); err != nil {
		return 0, err
	}

	s.logger.Info("catalog row created", "kind", s.kind, "id", g.ID, "name", g.Name)
	return g.ID, nil
}

func (s *Service) Update(id int64, dto GoodDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(id, dto.ToModel()); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return s.notFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return s.notFound
		}
		return err
	}
	return nil
}
