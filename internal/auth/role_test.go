package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Roles", func() {
	ginkgo.Describe("PermissionsForRole", func() {
		ginkgo.It("should give admin every permission", func() {
			gomega.Expect(PermissionsForRole(RoleAdmin)).To(gomega.Equal(Permissions{
				CanCreate:           true,
				CanEdit:             true,
				CanDelete:           true,
				CanManageUsers:      true,
				CanViewPendingTasks: true,
			}))
		})

		ginkgo.It("should give coordinador edit and pending task access only", func() {
			gomega.Expect(PermissionsForRole(RoleCoordinador)).To(gomega.Equal(Permissions{
				CanEdit:             true,
				CanViewPendingTasks: true,
			}))
		})

		ginkgo.It("should give registrador create and pending task access only", func() {
			gomega.Expect(PermissionsForRole(RoleRegistrador)).To(gomega.Equal(Permissions{
				CanCreate:           true,
				CanViewPendingTasks: true,
			}))
		})

		ginkgo.It("should give the zero vector for no role", func() {
			gomega.Expect(PermissionsForRole(RoleNone)).To(gomega.Equal(Permissions{}))
		})
	})

	ginkgo.Describe("ResolveRole", func() {
		ginkgo.It("should keep known roles", func() {
			gomega.Expect(ResolveRole("admin")).To(gomega.Equal(RoleAdmin))
			gomega.Expect(ResolveRole("coordinador")).To(gomega.Equal(RoleCoordinador))
			gomega.Expect(ResolveRole("registrador")).To(gomega.Equal(RoleRegistrador))
		})

		ginkgo.It("should map an empty stored role to registrador", func() {
			gomega.Expect(ResolveRole("")).To(gomega.Equal(RoleRegistrador))
		})

		ginkgo.It("should map unknown stored roles to no access", func() {
			gomega.Expect(ResolveRole("superuser")).To(gomega.Equal(RoleNone))
			gomega.Expect(ResolveRole("ADMIN")).To(gomega.Equal(RoleNone))
		})
	})

	ginkgo.Describe("HasPermission", func() {
		ginkgo.It("should be false on a nil user", func() {
			var u *User
			gomega.Expect(u.HasPermission(PermissionCreate)).To(gomega.BeFalse())
		})

		ginkgo.It("should consult the permission vector", func() {
			u := &User{Role: RoleRegistrador, Permissions: PermissionsForRole(RoleRegistrador)}
			gomega.Expect(u.HasPermission(PermissionCreate)).To(gomega.BeTrue())
			gomega.Expect(u.HasPermission(PermissionDelete)).To(gomega.BeFalse())
		})
	})
})
