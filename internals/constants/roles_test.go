package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	// cada papel passa no próprio nível
	for _, role := range AllRoles {
		assert.True(t, HasPermission(role, role), "papel %s deve passar no próprio nível", role)
	}

	// hierarquia estrita de cima para baixo
	assert.True(t, HasPermission(RoleSuperAdmin, RoleChurchAdmin))
	assert.True(t, HasPermission(RoleChurchAdmin, RolePastor))
	assert.True(t, HasPermission(RolePastor, RoleLeader))
	assert.True(t, HasPermission(RoleLeader, RoleMember))
	assert.True(t, HasPermission(RoleMember, RoleVisitor))

	// nunca para cima
	assert.False(t, HasPermission(RoleVisitor, RoleMember))
	assert.False(t, HasPermission(RoleMember, RoleLeader))
	assert.False(t, HasPermission(RoleLeader, RolePastor))
	assert.False(t, HasPermission(RolePastor, RoleChurchAdmin))
	assert.False(t, HasPermission(RoleChurchAdmin, RoleSuperAdmin))
}

func TestHasPermissionUnknownRole(t *testing.T) {
	assert.False(t, HasPermission("hacker", RoleVisitor))
	assert.False(t, HasPermission(RoleSuperAdmin, "inexistente"))
	assert.False(t, HasPermission("", ""))
}

func TestIsValidRole(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, IsValidRole(role))
	}
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole(""))
}

func TestCanAccessChurch(t *testing.T) {
	churchA := "11111111-1111-1111-1111-111111111111"
	churchB := "22222222-2222-2222-2222-222222222222"

	// super admin acessa qualquer igreja, mesmo sem vínculo
	assert.True(t, CanAccessChurch(RoleSuperAdmin, "", churchA))
	assert.True(t, CanAccessChurch(RoleSuperAdmin, churchA, churchB))

	// demais papéis: apenas a própria igreja
	assert.True(t, CanAccessChurch(RoleChurchAdmin, churchA, churchA))
	assert.False(t, CanAccessChurch(RoleChurchAdmin, churchA, churchB))
	assert.False(t, CanAccessChurch(RoleMember, churchA, churchB))

	// sem vínculo não acessa nada
	assert.False(t, CanAccessChurch(RoleMember, "", churchA))
	assert.False(t, CanAccessChurch(RolePastor, churchA, ""))
}

func TestRoleGroups(t *testing.T) {
	assert.Contains(t, LeaderAndAbove, RoleLeader)
	assert.Contains(t, LeaderAndAbove, RoleSuperAdmin)
	assert.NotContains(t, LeaderAndAbove, RoleMember)

	assert.Contains(t, ChurchAdminAndAbove, RoleChurchAdmin)
	assert.NotContains(t, ChurchAdminAndAbove, RolePastor)

	assert.Equal(t, []string{RoleSuperAdmin}, SuperAdminOnly)
}

func TestDetectChatTypeFromExt(t *testing.T) {
	assert.Equal(t, "image", DetectChatTypeFromExt("foto.PNG"))
	assert.Equal(t, "image", DetectChatTypeFromExt("perfil.jpeg"))
	assert.Equal(t, "file", DetectChatTypeFromExt("boletim.pdf"))
	assert.Equal(t, "text", DetectChatTypeFromExt("sem-extensao"))
}
