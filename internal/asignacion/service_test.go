package asignacion

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ceac-fct/placement-management/internal"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestAsignacion(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Asignacion Module Suite")
}

type mockRepository struct {
	asignaciones   map[string]*Asignacion
	draftOwners    map[string]string // draftID -> owning user
	consumedDrafts []string
	createCalls    int
	consumingCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		asignaciones: make(map[string]*Asignacion),
		draftOwners:  make(map[string]string),
	}
}

func (m *mockRepository) Create(a *Asignacion) error {
	m.createCalls++
	m.asignaciones[a.ID] = a
	return nil
}

func (m *mockRepository) CreateConsumingDraft(a *Asignacion, ownerID, draftID string) error {
	m.consumingCalls++
	if m.draftOwners[draftID] != ownerID {
		return internal.ErrPendingTaskNotFound
	}
	delete(m.draftOwners, draftID)
	m.consumedDrafts = append(m.consumedDrafts, draftID)
	m.asignaciones[a.ID] = a
	return nil
}

func (m *mockRepository) GetByID(id string) (*Asignacion, error) {
	return m.asignaciones[id], nil
}

func (m *mockRepository) GetAll() ([]*Asignacion, error) {
	var out []*Asignacion
	for _, a := range m.asignaciones {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockRepository) GetRecent(limit int) ([]*Asignacion, error) {
	all, _ := m.GetAll()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *mockRepository) Update(a *Asignacion) error {
	m.asignaciones[a.ID] = a
	return nil
}

func (m *mockRepository) Delete(id string) error {
	delete(m.asignaciones, id)
	return nil
}

type mockChecker struct {
	existing map[string]bool
	err      error
}

func (m *mockChecker) Exists(id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existing[id], nil
}

var _ = ginkgo.Describe("AsignacionService", func() {
	var (
		service     *Service
		repo        *mockRepository
		estudiantes *mockChecker
		empresas    *mockChecker
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	validDTO := func() CreateAsignacionDTO {
		return CreateAsignacionDTO{
			EstudianteID: "e-1",
			EmpresaID:    "emp-1",
			FechaInicio:  "2026-03-01",
			FechaFin:     "2026-06-30",
		}
	}

	ginkgo.BeforeEach(func() {
		repo = newMockRepository()
		estudiantes = &mockChecker{existing: map[string]bool{"e-1": true}}
		empresas = &mockChecker{existing: map[string]bool{"emp-1": true}}
		service = NewService(repo, estudiantes, empresas, nil, testLogger)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should create a placement when both references exist", func() {
			a, err := service.Create("u-1", validDTO())

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(repo.createCalls).To(gomega.Equal(1))
			gomega.Expect(repo.consumingCalls).To(gomega.BeZero())
		})

		ginkgo.It("should reject a missing estudiante", func() {
			dto := validDTO()
			dto.EstudianteID = "e-999"

			_, err := service.Create("u-1", dto)
			gomega.Expect(err).To(gomega.Equal(internal.ErrEstudianteNotFound))
			gomega.Expect(repo.createCalls).To(gomega.BeZero())
		})

		ginkgo.It("should reject a missing empresa", func() {
			dto := validDTO()
			dto.EmpresaID = "emp-999"

			_, err := service.Create("u-1", dto)
			gomega.Expect(err).To(gomega.Equal(internal.ErrEmpresaNotFound))
		})

		ginkgo.It("should reject an end date before the start date", func() {
			dto := validDTO()
			dto.FechaInicio = "2026-06-30"
			dto.FechaFin = "2026-03-01"

			_, err := service.Create("u-1", dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(repo.createCalls).To(gomega.BeZero())
		})

		ginkgo.It("should reject malformed dates", func() {
			dto := validDTO()
			dto.FechaInicio = "01/03/2026"

			_, err := service.Create("u-1", dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should consume the originating draft when one is given", func() {
			repo.draftOwners["draft-7"] = "u-1"
			dto := validDTO()
			draftID := "draft-7"
			dto.PendingTaskID = &draftID

			a, err := service.Create("u-1", dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a).ToNot(gomega.BeNil())
			gomega.Expect(repo.consumingCalls).To(gomega.Equal(1))
			gomega.Expect(repo.createCalls).To(gomega.BeZero())
			gomega.Expect(repo.consumedDrafts).To(gomega.ConsistOf("draft-7"))
		})

		ginkgo.It("should not consume a draft owned by another user", func() {
			repo.draftOwners["draft-7"] = "u-2"
			dto := validDTO()
			draftID := "draft-7"
			dto.PendingTaskID = &draftID

			_, err := service.Create("u-1", dto)
			gomega.Expect(err).To(gomega.Equal(internal.ErrPendingTaskNotFound))
			gomega.Expect(repo.consumedDrafts).To(gomega.BeEmpty())
			gomega.Expect(repo.draftOwners).To(gomega.HaveKey("draft-7"))
		})
	})

	ginkgo.Describe("GetByID", func() {
		ginkgo.It("should report a missing placement as not found", func() {
			_, err := service.GetByID("missing")
			gomega.Expect(err).To(gomega.Equal(internal.ErrAsignacionNotFound))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should re-check references on update", func() {
			a, err := service.Create("u-1", validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Update(a.ID, UpdateAsignacionDTO{
				EstudianteID: "e-999",
				EmpresaID:    "emp-1",
				FechaInicio:  "2026-03-01",
				FechaFin:     "2026-06-30",
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrEstudianteNotFound))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should delete an existing placement", func() {
			a, err := service.Create("u-1", validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Delete(a.ID)).To(gomega.Succeed())

			_, err = service.GetByID(a.ID)
			gomega.Expect(err).To(gomega.Equal(internal.ErrAsignacionNotFound))
		})

		ginkgo.It("should refuse to delete a missing placement", func() {
			gomega.Expect(service.Delete("missing")).To(gomega.Equal(internal.ErrAsignacionNotFound))
		})
	})
})
