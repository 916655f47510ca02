// internals/features/worship/controller/worship_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	worshipDTO "minhaigreja_backend/internals/features/worship/dto"
	worshipModel "minhaigreja_backend/internals/features/worship/model"
	worshipRepo "minhaigreja_backend/internals/features/worship/repository"
	helper "minhaigreja_backend/internals/helpers"
	tenantMw "minhaigreja_backend/internals/middlewares/tenant"
)

type WorshipController struct {
	Registry *database.Registry
}

func NewWorshipController(reg *database.Registry) *WorshipController {
	return &WorshipController{Registry: reg}
}

/* ====================== TEAMS ====================== */

// CreateTeam — POST /api/worship/teams (leader+)
func (wc *WorshipController) CreateTeam(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var req worshipDTO.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	leaderID, _ := uuid.Parse(req.LeaderID)
	team := &worshipModel.WorshipTeamModel{
		ChurchID:    churchID,
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    leaderID,
		Ministry:    req.Ministry,
		IsActive:    true,
	}

	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return worshipRepo.CreateTeam(tx, team)
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonCreated(c, "Equipe criada", team)
}

// ListTeams — GET /api/worship/teams
func (wc *WorshipController) ListTeams(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var teams []worshipModel.WorshipTeamModel
	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		teams, ferr = worshipRepo.ListTeams(tx)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", teams, nil)
}

// AddTeamMember — POST /api/worship/teams/:id/members (leader+)
func (wc *WorshipController) AddTeamMember(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de equipe inválido")
	}

	var req worshipDTO.AddTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	memberID, _ := uuid.Parse(req.MemberID)
	tm := &worshipModel.WorshipTeamMemberModel{
		TeamID:     teamID,
		MemberID:   memberID,
		Role:       req.Role,
		Instrument: req.Instrument,
		Skills:     req.Skills,
		IsActive:   true,
	}

	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		if _, ferr := worshipRepo.FindTeamByID(tx, teamID); ferr != nil {
			return ferr
		}
		return worshipRepo.AddTeamMember(tx, tm)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Equipe não encontrada")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonCreated(c, "Integrante adicionado", tm)
}

// ListTeamMembers — GET /api/worship/teams/:id/members
func (wc *WorshipController) ListTeamMembers(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de equipe inválido")
	}

	var members []worshipModel.WorshipTeamMemberModel
	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		members, ferr = worshipRepo.ListTeamMembers(tx, teamID)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", members, nil)
}

// RemoveTeamMember — DELETE /api/worship/teams/:id/members/:memberId (leader+)
func (wc *WorshipController) RemoveTeamMember(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de equipe inválido")
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de membro inválido")
	}

	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return worshipRepo.RemoveTeamMember(tx, teamID, memberID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Integrante não encontrado na equipe")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonDeleted(c, "Integrante removido", fiber.Map{"team_id": teamID, "member_id": memberID})
}

/* ====================== SONGS ====================== */

// CreateSong — POST /api/worship/songs (leader+)
func (wc *WorshipController) CreateSong(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var req worshipDTO.CreateSongRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	song := &worshipModel.SongModel{
		ChurchID:   churchID,
		Title:      req.Title,
		Artist:     req.Artist,
		Key:        req.Key,
		Tempo:      req.Tempo,
		Genre:      req.Genre,
		Lyrics:     req.Lyrics,
		Chords:     req.Chords,
		CcliNumber: req.CcliNumber,
		Duration:   req.Duration,
		Difficulty: req.Difficulty,
		Tags:       req.Tags,
	}

	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return worshipRepo.CreateSong(tx, song)
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonCreated(c, "Música cadastrada", song)
}

// ListSongs — GET /api/worship/songs?search=
func (wc *WorshipController) ListSongs(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var songs []worshipModel.SongModel
	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		songs, ferr = worshipRepo.ListSongs(tx, c.Query("search"))
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", songs, nil)
}

/* ====================== SETLISTS ====================== */

// CreateSetlist — POST /api/worship/setlists (leader+)
// Cria o repertório com as músicas na ordem enviada.
func (wc *WorshipController) CreateSetlist(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var req worshipDTO.CreateSetlistRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	teamID, _ := uuid.Parse(req.TeamID)
	eventDate, _ := time.Parse("2006-01-02", req.EventDate)
	setlist := &worshipModel.SetlistModel{
		ChurchID:  churchID,
		Name:      req.Name,
		EventDate: eventDate,
		EventType: req.EventType,
		TeamID:    teamID,
		Notes:     req.Notes,
	}

	songs := make([]worshipModel.SetlistSongModel, 0, len(req.Songs))
	for _, item := range req.Songs {
		songID, perr := uuid.Parse(item.SongID)
		if perr != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"songs": {"ID de música inválido: " + item.SongID},
			})
		}
		songs = append(songs, worshipModel.SetlistSongModel{
			SongID: songID,
			Key:    item.Key,
			Notes:  item.Notes,
		})
	}

	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		if _, ferr := worshipRepo.FindTeamByID(tx, teamID); ferr != nil {
			return ferr
		}
		if ferr := worshipRepo.CreateSetlist(tx, setlist); ferr != nil {
			return ferr
		}
		return worshipRepo.ReplaceSetlistSongs(tx, setlist.ID, songs)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Equipe não encontrada")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonCreated(c, "Repertório criado", setlist)
}

// ListSetlists — GET /api/worship/setlists
func (wc *WorshipController) ListSetlists(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var setlists []worshipModel.SetlistModel
	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		setlists, ferr = worshipRepo.ListSetlists(tx)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", setlists, nil)
}

// SetlistByID — GET /api/worship/setlists/:id
func (wc *WorshipController) SetlistByID(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	setlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de repertório inválido")
	}

	var setlist *worshipModel.SetlistModel
	err = wc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		setlist, ferr = worshipRepo.FindSetlistByID(tx, setlistID)
		return ferr
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Repertório não encontrado")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonOK(c, "", setlist)
}
