package domain

// Role identifies a principal's position in the barangay staff hierarchy.
type Role string

const (
	RoleResident   Role = "resident"
	RoleStaff      Role = "staff"
	RoleTreasurer  Role = "treasurer"
	RoleSecretary  Role = "secretary"
	RoleCaptain    Role = "captain"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// roleRank encodes the strict permission ordering: a higher rank is strictly
// more capable. super_admin additionally removes tenant scoping, but that is
// the scope resolver's concern, not the ordering's.
var roleRank = map[Role]int{
	RoleResident:   1,
	RoleStaff:      2,
	RoleTreasurer:  3,
	RoleSecretary:  4,
	RoleCaptain:    5,
	RoleAdmin:      6,
	RoleSuperAdmin: 7,
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// Module names a functional area of the records system.
type Module string

const (
	ModuleResidents        Module = "residents"
	ModuleHouseholds       Module = "households"
	ModuleBusinesses       Module = "businesses"
	ModulePermits          Module = "permits"
	ModuleIncidents        Module = "incidents"
	ModuleDocumentRequests Module = "documentRequests"
	ModuleAnnouncements    Module = "announcements"
	ModuleEvents           Module = "events"
	ModuleOfficials        Module = "officials"
	ModuleUsers            Module = "users"
	ModuleBarangays        Module = "barangays"
	ModuleReports          Module = "reports"
)

// Action names an operation on a module.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// staffPermissions is the per-module action set granted to the staff role.
// Staff never touches user or barangay administration.
var staffPermissions = map[Module]map[Action]bool{
	ModuleResidents:        {ActionView: true, ActionCreate: true, ActionEdit: true},
	ModuleHouseholds:       {ActionView: true, ActionCreate: true, ActionEdit: true},
	ModuleBusinesses:       {ActionView: true, ActionCreate: true, ActionEdit: true},
	ModulePermits:          {ActionView: true, ActionCreate: true, ActionEdit: true},
	ModuleIncidents:        {ActionView: true, ActionCreate: true, ActionEdit: true},
	ModuleDocumentRequests: {ActionView: true, ActionCreate: true, ActionEdit: true},
	ModuleAnnouncements:    {ActionView: true, ActionCreate: true, ActionEdit: true},
	ModuleEvents:           {ActionView: true, ActionCreate: true, ActionEdit: true},
	ModuleOfficials:        {ActionView: true, ActionCreate: true, ActionEdit: true},
}

// residentPermissions is the restrictive allow-list for resident accounts:
// they can see announcements and events and file document requests.
var residentPermissions = map[Module]map[Action]bool{
	ModuleAnnouncements:    {ActionView: true, ActionCreate: true},
	ModuleEvents:           {ActionView: true, ActionCreate: true},
	ModuleDocumentRequests: {ActionView: true, ActionCreate: true},
}

// HasRole reports whether r is in the allowed set. super_admin always passes.
func HasRole(r Role, allowed ...Role) bool {
	if r == RoleSuperAdmin {
		return true
	}
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// HasMinimumRole reports whether r ranks at or above threshold.
// Unknown roles rank below everything.
func HasMinimumRole(r, threshold Role) bool {
	return roleRank[r] >= roleRank[threshold]
}

// HasModulePermission reports whether r may perform action on module.
// Roles above staff have unconditional access to every module; staff and
// resident consult their respective permission tables; anything else is denied.
func HasModulePermission(r Role, module Module, action Action) bool {
	if roleRank[r] > roleRank[RoleStaff] {
		return true
	}
	switch r {
	case RoleStaff:
		return staffPermissions[module][action]
	case RoleResident:
		return residentPermissions[module][action]
	}
	return false
}
