package medical_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/catalog"
	"github.com/furnimed/catalog-admin/internal/medical"
)

func TestMedical(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Medical Suite")
}

// mockRepository implements medical.RepositoryAPI for testing
type mockRepository struct {
	rows       map[int64]medical.Good
	nextID     int64
	shouldFail bool
	failError  error
}

func newMockRepository() *mockRepository {
	return &mockRepository{rows: make(map[int64]medical.Good), nextID: 1}
}

func (m *mockRepository) List(page catalog.Page) ([]medical.Good, int64, error) {
	if m.shouldFail {
		return nil, 0, m.failError
	}
	out := make([]medical.Good, 0, len(m.rows))
	for _, g := range m.rows {
		out = append(out, g)
	}
	return out, int64(len(m.rows)), nil
}

func (m *mockRepository) GetByID(id int64) (*medical.Good, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	g, ok := m.rows[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &g, nil
}

func (m *mockRepository) Create(g *medical.Good) error {
	if m.shouldFail {
		return m.failError
	}
	g.ID = m.nextID
	m.nextID++
	m.rows[g.ID] = *g
	return nil
}

func (m *mockRepository) Update(id int64, g *medical.Good) error {
	if m.shouldFail {
		return m.failError
	}
	if _, ok := m.rows[id]; !ok {
		return catalog.ErrNotFound
	}
	g.ID = id
	m.rows[id] = *g
	return nil
}

func (m *mockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	if _, ok := m.rows[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

var _ = Describe("Medical Service", func() {
	var (
		mockRepo *mockRepository
		service  *medical.Service
	)

	validDTO := func() medical.GoodDTO {
		price := catalog.Decimal(24.90)
		return medical.GoodDTO{
			Name:           "Elastic Bandage",
			Category:       "First Aid",
			Availability:   true,
			Manufacturer:   "MedCore",
			ExpirationDate: "2027-06-30",
			Price:          &price,
		}
	}

	BeforeEach(func() {
		mockRepo = newMockRepository()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = medical.NewService(mockRepo, "medical goods", slogger)
	})

	Describe("Kind", func() {
		It("should report the bound catalog kind", func() {
			Expect(service.Kind()).To(Equal("medical goods"))
		})
	})

	Describe("Create", func() {
		It("should store a valid row and return its id", func() {
			id, err := service.Create(validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(int64(1)))

			stored, err := service.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Name).To(Equal("Elastic Bandage"))
		})

		It("should reject missing required fields", func() {
			dto := validDTO()
			dto.Manufacturer = ""
			_, err := service.Create(dto)
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should reject a malformed expiration date", func() {
			dto := validDTO()
			dto.ExpirationDate = "soon"
			_, err := service.Create(dto)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("expiration_date"))
		})
	})

	Describe("GetByID", func() {
		It("should map a missing row to the not-found error", func() {
			_, err := service.GetByID(42)
			Expect(err).To(MatchError(internal.ErrMedicalGoodNotFound))
		})

		It("should pass other repository errors through", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("connection reset")

			_, err := service.GetByID(1)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("connection reset"))
		})
	})

	Describe("Update", func() {
		It("should map a missing row to the not-found error", func() {
			Expect(service.Update(42, validDTO())).To(MatchError(internal.ErrMedicalGoodNotFound))
		})

		It("should replace an existing row", func() {
			id, err := service.Create(validDTO())
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO()
			dto.Name = "Compression Bandage"
			Expect(service.Update(id, dto)).To(Succeed())

			stored, err := service.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Name).To(Equal("Compression Bandage"))
		})
	})

	Describe("Delete", func() {
		It("should map a missing row to the not-found error", func() {
			Expect(service.Delete(42)).To(MatchError(internal.ErrMedicalGoodNotFound))
		})

		It("should remove an existing row", func() {
			id, err := service.Create(validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(id)).To(Succeed())
			_, err = service.GetByID(id)
			Expect(err).To(MatchError(internal.ErrMedicalGoodNotFound))
		})
	})

	Describe("with a database-backed repository", func() {
		var dbService *medical.Service

		BeforeEach(func() {
			db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
				Logger: gormlogger.Default.LogMode(gormlogger.Silent),
			})
			Expect(err).NotTo(HaveOccurred())

			err = db.Table(medical.TableMedicalGoods).AutoMigrate(&medical.Good{})
			Expect(err).NotTo(HaveOccurred())

			repo := catalog.NewRepository[medical.Good](db, medical.TableMedicalGoods)
			slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
			dbService = medical.NewService(repo, "medical goods", slogger)
		})

		It("should persist availability false rather than the column default", func() {
			dto := validDTO()
			dto.Availability = false

			id, err := dbService.Create(dto)
			Expect(err).NotTo(HaveOccurred())

			stored, err := dbService.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Availability).To(BeFalse())
		})

		It("should round-trip availability true", func() {
			id, err := dbService.Create(validDTO())
			Expect(err).NotTo(HaveOccurred())

			stored, err := dbService.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Availability).To(BeTrue())
		})
	})
})
