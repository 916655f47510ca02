// file: internals/route/details/tenant_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	"minhaigreja_backend/internals/constants"
	database "minhaigreja_backend/internals/databases"
	cellController "minhaigreja_backend/internals/features/cellgroups/controller"
	chatController "minhaigreja_backend/internals/features/chat/controller"
	memberController "minhaigreja_backend/internals/features/members/controller"
	notifController "minhaigreja_backend/internals/features/notifications/controller"
	worshipController "minhaigreja_backend/internals/features/worship/controller"
	authMw "minhaigreja_backend/internals/middlewares/auth"
	tenantMw "minhaigreja_backend/internals/middlewares/tenant"
)

// TenantRoutes monta as rotas que operam dentro do schema da igreja ativa.
// Cadeia obrigatória: JWT → resolução de tenant pelo Host → checagem de
// acesso cruzado.
func TenantRoutes(app *fiber.App, reg *database.Registry) {
	base := app.Group("/api",
		authMw.AuthMiddleware(reg),
		tenantMw.ChurchContext(reg),
		tenantMw.RequireChurchAccess(),
	)

	leaderGate := authMw.RoleMiddlewareWithCustomError(
		constants.LeaderAndAbove,
		constants.RoleErrorLeader("gestão da igreja"),
	)
	adminGate := authMw.RoleMiddlewareWithCustomError(
		constants.ChurchAdminAndAbove,
		constants.RoleErrorAdmin("gestão da igreja"),
	)

	// ===================== MEMBROS =====================
	mc := memberController.NewMemberController(reg)
	members := base.Group("/members")
	members.Get("/", mc.List)
	members.Get("/:id", mc.ByID)
	members.Post("/", leaderGate, mc.Create)
	members.Patch("/:id", leaderGate, mc.Update)
	members.Patch("/:id/cell-group", leaderGate, mc.AssignCellGroup)
	members.Delete("/:id", adminGate, mc.Deactivate)

	// ===================== CÉLULAS =====================
	cc := cellController.NewCellGroupController(reg)
	cells := base.Group("/cell-groups")
	cells.Get("/", cc.List)
	cells.Get("/:id", cc.ByID)
	cells.Post("/", leaderGate, cc.Create)
	cells.Patch("/:id", leaderGate, cc.Update)
	cells.Delete("/:id", adminGate, cc.Deactivate)

	// ===================== LOUVOR =====================
	wc := worshipController.NewWorshipController(reg)
	worship := base.Group("/worship")
	worship.Get("/teams", wc.ListTeams)
	worship.Post("/teams", leaderGate, wc.CreateTeam)
	worship.Get("/teams/:id/members", wc.ListTeamMembers)
	worship.Post("/teams/:id/members", leaderGate, wc.AddTeamMember)
	worship.Delete("/teams/:id/members/:memberId", leaderGate, wc.RemoveTeamMember)
	worship.Get("/songs", wc.ListSongs)
	worship.Post("/songs", leaderGate, wc.CreateSong)
	worship.Get("/setlists", wc.ListSetlists)
	worship.Get("/setlists/:id", wc.SetlistByID)
	worship.Post("/setlists", leaderGate, wc.CreateSetlist)

	// ===================== CHAT =====================
	chat := chatController.NewChatController(reg)
	chatGroup := base.Group("/chat")
	chatGroup.Post("/messages", chat.Send)
	chatGroup.Get("/messages/with/:userId", chat.Conversation)
	chatGroup.Get("/messages/group/:groupId", chat.GroupMessages)
	chatGroup.Get("/unread", chat.UnreadCount)

	// ===================== NOTIFICAÇÕES =====================
	nc := notifController.NewNotificationController(reg)
	notifs := base.Group("/notifications")
	notifs.Get("/", nc.List)
	notifs.Post("/", leaderGate, nc.Create)
	notifs.Patch("/read-all", nc.MarkAllRead)
	notifs.Patch("/:id/read", nc.MarkRead)
}
