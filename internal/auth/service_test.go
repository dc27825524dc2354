package auth

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	passwords     map[string]string // email -> password hash
	userIDs       map[string]string // email -> userID
	records       map[string]*UserRecord
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockUserRepository{
		passwords: map[string]string{
			"registrador@centro.es": string(hashedPassword),
			"admin@centro.es":       string(hashedPassword),
			"coordinador@centro.es": string(hashedPassword),
		},
		userIDs: map[string]string{
			"registrador@centro.es": "u-1",
			"admin@centro.es":       "u-2",
			"coordinador@centro.es": "u-3",
		},
		records: map[string]*UserRecord{
			"u-1": {ID: "u-1", Email: "registrador@centro.es", Role: "registrador", IsActive: true},
			"u-2": {ID: "u-2", Email: "admin@centro.es", Role: "admin", IsActive: true},
			"u-3": {ID: "u-3", Email: "coordinador@centro.es", Role: "coordinador", IsActive: true},
			"u-4": {ID: "u-4", Email: "legacy@centro.es", Role: "", IsActive: true},
			"u-5": {ID: "u-5", Email: "weird@centro.es", Role: "superuser", IsActive: true},
		},
	}
}

func (m *mockUserRepository) GetPasswordForEmail(email string) (string, string, error) {
	if m.returnError {
		return "", "", m.errorToReturn
	}
	if hash, exists := m.passwords[email]; exists {
		return hash, m.userIDs[email], nil
	}
	return "", "", errors.New("user not found")
}

func (m *mockUserRepository) GetUserRecord(userID string) (*UserRecord, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if rec, exists := m.records[userID]; exists {
		return rec, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) setError(err error) {
	m.returnError = true
	m.errorToReturn = err
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator(
			"test-access-secret-test-access-secret",
			"test-refresh-secret-test-refresh-secret",
			15*time.Minute,
			24*time.Hour,
		)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, testLogger)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return access and refresh tokens", func() {
				tokens, err := service.Authenticate(LoginDTO{
					Email:    "registrador@centro.es",
					Password: "correct_password",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.Equal(tokens.RefreshToken))
			})

			ginkgo.It("should issue an access token carrying the user ID", func() {
				tokens, err := service.Authenticate(LoginDTO{
					Email:    "admin@centro.es",
					Password: "correct_password",
				})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(tokens.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("u-2"))
				gomega.Expect(claims.Email).To(gomega.Equal("admin@centro.es"))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should reject a wrong password", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "registrador@centro.es",
					Password: "wrong_password",
				})
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})

			ginkgo.It("should reject an unknown email", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "nobody@centro.es",
					Password: "correct_password",
				})
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})

			ginkgo.It("should not leak repository errors", func() {
				mockRepo.setError(errors.New("connection refused"))
				_, err := service.Authenticate(LoginDTO{
					Email:    "registrador@centro.es",
					Password: "correct_password",
				})
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should exchange a refresh token for a new pair", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "registrador@centro.es",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			newTokens, err := service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(newTokens.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(newTokens.RefreshToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should reject garbage tokens", func() {
			_, err := service.RefreshTokens("not-a-token")
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})
	})

	ginkgo.Describe("ResolveUser", func() {
		ginkgo.It("should resolve an admin with the full permission set", func() {
			user := service.ResolveUser("u-2")

			gomega.Expect(user.Role).To(gomega.Equal(RoleAdmin))
			gomega.Expect(user.Permissions.CanCreate).To(gomega.BeTrue())
			gomega.Expect(user.Permissions.CanEdit).To(gomega.BeTrue())
			gomega.Expect(user.Permissions.CanDelete).To(gomega.BeTrue())
			gomega.Expect(user.Permissions.CanManageUsers).To(gomega.BeTrue())
			gomega.Expect(user.Permissions.CanViewPendingTasks).To(gomega.BeTrue())
		})

		ginkgo.It("should resolve a coordinador with edit but not create or delete", func() {
			user := service.ResolveUser("u-3")

			gomega.Expect(user.Role).To(gomega.Equal(RoleCoordinador))
			gomega.Expect(user.Permissions.CanEdit).To(gomega.BeTrue())
			gomega.Expect(user.Permissions.CanCreate).To(gomega.BeFalse())
			gomega.Expect(user.Permissions.CanDelete).To(gomega.BeFalse())
			gomega.Expect(user.Permissions.CanManageUsers).To(gomega.BeFalse())
		})

		ginkgo.It("should treat an empty stored role as registrador", func() {
			user := service.ResolveUser("u-4")

			gomega.Expect(user.Role).To(gomega.Equal(RoleRegistrador))
			gomega.Expect(user.Permissions.CanCreate).To(gomega.BeTrue())
			gomega.Expect(user.Permissions.CanEdit).To(gomega.BeFalse())
		})

		ginkgo.It("should grant nothing for an unrecognized stored role", func() {
			user := service.ResolveUser("u-5")

			gomega.Expect(user.Role).To(gomega.Equal(RoleNone))
			gomega.Expect(user.Permissions).To(gomega.Equal(Permissions{}))
		})

		ginkgo.It("should grant nothing when the record is missing", func() {
			user := service.ResolveUser("u-999")

			gomega.Expect(user.ID).To(gomega.Equal("u-999"))
			gomega.Expect(user.Role).To(gomega.Equal(RoleNone))
			gomega.Expect(user.HasPermission(PermissionCreate)).To(gomega.BeFalse())
			gomega.Expect(user.HasPermission(PermissionViewPendingTasks)).To(gomega.BeFalse())
		})

		ginkgo.It("should grant nothing when the store is unreachable", func() {
			mockRepo.setError(errors.New("connection refused"))
			user := service.ResolveUser("u-2")

			gomega.Expect(user.Role).To(gomega.Equal(RoleNone))
			gomega.Expect(user.HasPermission(PermissionManageUsers)).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("JWTTokenGenerator", func() {
		ginkgo.It("should reject an access token validated after tampering", func() {
			token, err := tokenGen.GenerateAccessToken("u-1", "registrador@centro.es")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = tokenGen.ValidateToken(token + "x")
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})

		ginkgo.It("should validate refresh tokens with the refresh secret", func() {
			token, err := tokenGen.GenerateRefreshToken("u-1", "registrador@centro.es")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			claims, err := tokenGen.ValidateToken(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal("u-1"))
		})
	})
})
