package auth

// Role determines the fixed permission set a user operates with.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinador Role = "coordinador"
	RoleRegistrador Role = "registrador"

	// RoleNone is the explicit no-access state used when role resolution
	// fails. The system this replaces fell back to admin on any resolution
	// error; here a failed lookup grants nothing.
	RoleNone Role = ""
)

// Permission names an action the permission gate can check.
type Permission string

const (
	PermissionCreate           Permission = "create"
	PermissionEdit             Permission = "edit"
	PermissionDelete           Permission = "delete"
	PermissionManageUsers      Permission = "manage_users"
	PermissionViewPendingTasks Permission = "view_pending_tasks"
)

// Permissions is the capability vector derived from a role. It is never
// persisted; it is recomputed on every resolution.
type Permissions struct {
	CanCreate           bool `json:"canCreate"`
	CanEdit             bool `json:"canEdit"`
	CanDelete           bool `json:"canDelete"`
	CanManageUsers      bool `json:"canManageUsers"`
	CanViewPendingTasks bool `json:"canViewPendingTasks"`
}

var rolePermissions = map[Role]Permissions{
	RoleAdmin: {
		CanCreate:           true,
		CanEdit:             true,
		CanDelete:           true,
		CanManageUsers:      true,
		CanViewPendingTasks: true,
	},
	RoleCoordinador: {
		CanEdit:             true,
		CanViewPendingTasks: true,
	},
	RoleRegistrador: {
		CanCreate:           true,
		CanViewPendingTasks: true,
	},
}

var roleNames = map[Role]string{
	RoleAdmin:       "Administrador",
	RoleCoordinador: "Coordinador",
	RoleRegistrador: "Registrador",
}

// PermissionsForRole returns the permission set for a role. Unknown roles,
// including RoleNone, get the zero vector.
func PermissionsForRole(role Role) Permissions {
	return rolePermissions[role]
}

// ResolveRole maps a stored role value to an effective role. An empty stored
// value means the account predates role provisioning and counts as
// registrador; an unrecognized value grants nothing.
func ResolveRole(stored string) Role {
	switch Role(stored) {
	case RoleAdmin, RoleCoordinador, RoleRegistrador:
		return Role(stored)
	case RoleNone:
		return RoleRegistrador
	default:
		return RoleNone
	}
}

func (r Role) DisplayName() string {
	return roleNames[r]
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCoordinador, RoleRegistrador:
		return true
	}
	return false
}

func (p Permissions) Has(action Permission) bool {
	switch action {
	case PermissionCreate:
		return p.CanCreate
	case PermissionEdit:
		return p.CanEdit
	case PermissionDelete:
		return p.CanDelete
	case PermissionManageUsers:
		return p.CanManageUsers
	case PermissionViewPendingTasks:
		return p.CanViewPendingTasks
	}
	return false
}

// HasPermission reports whether the user's resolved permission set grants an
// action. A user with an unresolved role has the zero vector and denies all.
func (u *User) HasPermission(action Permission) bool {
	if u == nil {
		return false
	}
	return u.Permissions.Has(action)
}
