package constants

import "fmt"

// Papéis globais do sistema (coluna users.role no banco compartilhado)
const (
	RoleSuperAdmin  = "super_admin"
	RoleChurchAdmin = "church_admin"
	RolePastor      = "pastor"
	RoleLeader      = "leader"
	RoleMember      = "member"
	RoleVisitor     = "visitor"
)

// Template de mensagem de erro por papel
const (
	ErrOnlyLeadersCanAccess = "❌ Apenas líder, pastor ou administrador podem acessar %s."
	ErrOnlyAdminsCanAccess  = "❌ Apenas administradores da igreja podem acessar %s."
	ErrOnlySuperCanAccess   = "❌ Apenas o super admin pode acessar %s."
	ErrOnlyMembersCanAccess = "❌ Apenas membros cadastrados podem acessar %s."
)

func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperCanAccess, feature)
}

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMembersCanAccess, feature)
}

// ==========================
// ✅ Hierarquia fixa de papéis
// ==========================
// super_admin > church_admin > pastor > leader > member > visitor
var roleHierarchy = map[string]int{
	RoleSuperAdmin:  6,
	RoleChurchAdmin: 5,
	RolePastor:      4,
	RoleLeader:      3,
	RoleMember:      2,
	RoleVisitor:     1,
}

// IsValidRole informa se o papel existe na hierarquia.
func IsValidRole(role string) bool {
	_, ok := roleHierarchy[role]
	return ok
}

// HasPermission: true se o papel tem ranking >= ao papel exigido.
// Papel desconhecido nunca passa.
func HasPermission(role, requiredRole string) bool {
	r, ok := roleHierarchy[role]
	if !ok {
		return false
	}
	req, ok := roleHierarchy[requiredRole]
	if !ok {
		return false
	}
	return r >= req
}

// CanAccessChurch: super admin acessa qualquer igreja; os demais apenas a própria.
// Usuário sem vínculo (userChurchID vazio) não acessa igreja nenhuma.
func CanAccessChurch(role, userChurchID, targetChurchID string) bool {
	if role == RoleSuperAdmin {
		return true
	}
	if userChurchID == "" || targetChurchID == "" {
		return false
	}
	return userChurchID == targetChurchID
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleChurchAdmin,
		RolePastor,
		RoleLeader,
		RoleMember,
		RoleVisitor,
	}

	LeaderAndAbove = []string{
		RoleLeader,
		RolePastor,
		RoleChurchAdmin,
		RoleSuperAdmin,
	}

	PastorAndAbove = []string{
		RolePastor,
		RoleChurchAdmin,
		RoleSuperAdmin,
	}

	ChurchAdminAndAbove = []string{
		RoleChurchAdmin,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
