package user

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/auth"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockRepository struct {
	byID    map[string]*User
	byEmail map[string]*User
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (m *mockRepository) Create(u *User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockRepository) GetByID(id string) (*User, error) {
	return m.byID[id], nil
}

func (m *mockRepository) GetByEmail(email string) (*User, error) {
	return m.byEmail[email], nil
}

func (m *mockRepository) GetAll() ([]*User, error) {
	var out []*User
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockRepository) Update(u *User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *mockRepository) Delete(id string) error {
	if u, ok := m.byID[id]; ok {
		delete(m.byEmail, u.Email)
		delete(m.byID, id)
	}
	return nil
}

var _ = ginkgo.Describe("UserService", func() {
	var (
		service *Service
		repo    *mockRepository
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	validDTO := func() CreateUserDTO {
		return CreateUserDTO{
			Email:    "marta@centro.es",
			Password: "secreto-largo",
			Nombre:   "Marta",
			Apellido: "Vidal",
			Role:     auth.RoleRegistrador,
		}
	}

	ginkgo.BeforeEach(func() {
		repo = newMockRepository()
		service = NewService(repo, nil, bcrypt.MinCost, testLogger)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should store an active account with a bcrypt hash", func() {
			u, err := service.Create(validDTO())

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(u.IsActive).To(gomega.BeTrue())
			gomega.Expect(u.PasswordHash).ToNot(gomega.Equal("secreto-largo"))
			gomega.Expect(bcrypt.CompareHashAndPassword(
				[]byte(u.PasswordHash), []byte("secreto-largo"))).To(gomega.Succeed())
		})

		ginkgo.It("should refuse a duplicate email", func() {
			_, err := service.Create(validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Create(validDTO())
			gomega.Expect(err).To(gomega.Equal(internal.ErrDuplicateEmail))
		})

		ginkgo.It("should refuse an invalid role", func() {
			dto := validDTO()
			dto.Role = "superuser"

			_, err := service.Create(dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should refuse a short password", func() {
			dto := validDTO()
			dto.Password = "corto"

			_, err := service.Create(dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should change the stored role", func() {
			created, err := service.Create(validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			updated, err := service.Update(created.ID, UpdateUserDTO{
				Nombre:   "Marta",
				Apellido: "Vidal",
				Role:     auth.RoleCoordinador,
				IsActive: true,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Role).To(gomega.Equal("coordinador"))
			gomega.Expect(updated.EffectiveRole()).To(gomega.Equal(auth.RoleCoordinador))
		})

		ginkgo.It("should report a missing account as not found", func() {
			_, err := service.Update("missing", UpdateUserDTO{
				Nombre: "Nadie",
				Role:   auth.RoleRegistrador,
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrUserNotFound))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should remove the account", func() {
			created, err := service.Create(validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Delete(created.ID)).To(gomega.Succeed())

			_, err = service.GetByID(created.ID)
			gomega.Expect(err).To(gomega.Equal(internal.ErrUserNotFound))
		})
	})

	ginkgo.Describe("UserView", func() {
		ginkgo.It("should render a missing stored role as registrador", func() {
			view := NewUserView(&User{ID: "u-1", Email: "legacy@centro.es", Role: ""})

			gomega.Expect(view.Role).To(gomega.Equal(auth.RoleRegistrador))
			gomega.Expect(view.RoleDisplay).To(gomega.Equal("Registrador"))
		})

		ginkgo.It("should render an unknown stored role as no access", func() {
			view := NewUserView(&User{ID: "u-2", Email: "weird@centro.es", Role: "superuser"})

			gomega.Expect(view.Role).To(gomega.Equal(auth.RoleNone))
			gomega.Expect(view.RoleDisplay).To(gomega.BeEmpty())
		})
	})
})
