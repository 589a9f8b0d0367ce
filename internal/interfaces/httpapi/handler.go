package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/portalwatch/portal-api/internal/domain/career"
	"github.com/portalwatch/portal-api/internal/domain/roster"
	"github.com/portalwatch/portal-api/internal/domain/stats"
	"github.com/portalwatch/portal-api/internal/domain/team"
	"github.com/portalwatch/portal-api/internal/domain/transfer"
	"github.com/portalwatch/portal-api/internal/platform/logging"
	"github.com/portalwatch/portal-api/internal/usecase"
)

type Handler struct {
	transferService *usecase.TransferService
	rosterService   *usecase.RosterIndexService
	careerService   *usecase.CareerService
	statsService    *usecase.StatsService
	logger          *logging.Logger
	validator       *validator.Validate
	now             func() time.Time
}

func NewHandler(
	transferService *usecase.TransferService,
	rosterService *usecase.RosterIndexService,
	careerService *usecase.CareerService,
	statsService *usecase.StatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		transferService: transferService,
		rosterService:   rosterService,
		careerService:   careerService,
		statsService:    statsService,
		logger:          logger,
		validator:       validator.New(),
		now:             time.Now,
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type yearQuery struct {
	Year int `validate:"gte=2013,lte=2100"`
}

// portalSeason is the season new portal entries belong to: the one after
// the season currently being played.
func (h *Handler) portalSeason() int {
	return usecase.CurrentSeasonYear(h.now()) + 1
}

func (h *Handler) yearParam(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return fallback, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: year must be an integer", usecase.ErrInvalidInput)
	}
	return year, nil
}

type healthCacheInfo struct {
	HasData    bool `json:"hasData"`
	AgeSeconds *int `json:"ageSeconds"`
	TeamCount  int  `json:"teamCount"`
}

type healthResponse struct {
	Status         string          `json:"status"`
	Cache          healthCacheInfo `json:"cache"`
	CfbdConfigured bool            `json:"cfbdConfigured"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := h.transferService.Status(ctx, h.portalSeason())
	info := healthCacheInfo{
		HasData:   status.HasData,
		TeamCount: status.TeamCount,
	}
	if status.HasData {
		age := status.AgeSeconds
		info.AgeSeconds = &age
	}

	writeSuccess(ctx, w, http.StatusOK, healthResponse{
		Status:         "ok",
		Cache:          info,
		CfbdConfigured: h.transferService.ProviderConfigured(),
	})
}

type teamsResponse struct {
	Count int         `json:"count"`
	Teams []team.Team `json:"teams"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams := team.All()
	writeSuccess(ctx, w, http.StatusOK, teamsResponse{
		Count: len(teams),
		Teams: teams,
	})
}

type transfersResponse struct {
	Teams         map[string]transfer.TeamBucket `json:"teams"`
	TotalPlayers  int                            `json:"totalPlayers"`
	TotalMovement int                            `json:"totalMovement"`
	LastUpdated   time.Time                      `json:"lastUpdated"`
	Season        int                            `json:"season"`
}

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfers")
	defer span.End()

	year, err := h.yearParam(r, h.portalSeason())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, yearQuery{Year: year}); err != nil {
		writeError(ctx, w, err)
		return
	}

	aggregate, err := h.transferService.GetTransfersByTeam(ctx, year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transfersResponse{
		Teams:         aggregate.Buckets,
		TotalPlayers:  aggregate.TotalPlayersOut(),
		TotalMovement: aggregate.TotalMovement(),
		LastUpdated:   aggregate.LastUpdated,
		Season:        aggregate.Season,
	})
}

type teamTransfersResponse struct {
	Team       string                    `json:"team"`
	Info       team.Info                 `json:"info"`
	PlayersOut []transfer.ResolvedPlayer `json:"playersOut"`
	PlayersIn  []transfer.ResolvedPlayer `json:"playersIn"`
	NetChange  int                       `json:"netChange"`
}

func (h *Handler) GetTeamTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamTransfers")
	defer span.End()

	year, err := h.yearParam(r, h.portalSeason())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, yearQuery{Year: year}); err != nil {
		writeError(ctx, w, err)
		return
	}

	canonical, bucket, err := h.transferService.GetTeamBucket(ctx, r.PathValue("team"), year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	info, _ := team.Lookup(canonical)

	writeSuccess(ctx, w, http.StatusOK, teamTransfersResponse{
		Team:       canonical,
		Info:       info,
		PlayersOut: bucket.PlayersOut,
		PlayersIn:  bucket.PlayersIn,
		NetChange:  bucket.NetChange(),
	})
}

type rosterResponse struct {
	Team        string          `json:"team"`
	Info        team.Info       `json:"info"`
	Year        int             `json:"year"`
	PlayerCount int             `json:"playerCount"`
	Players     []roster.Member `json:"players"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	year, err := h.yearParam(r, usecase.CurrentSeasonYear(h.now()))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, yearQuery{Year: year}); err != nil {
		writeError(ctx, w, err)
		return
	}

	rawTeam := r.PathValue("team")
	members, err := h.rosterService.GetRoster(ctx, rawTeam, year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	canonical := team.Normalize(rawTeam)
	info, _ := team.Lookup(canonical)

	writeSuccess(ctx, w, http.StatusOK, rosterResponse{
		Team:        canonical,
		Info:        info,
		Year:        year,
		PlayerCount: len(members),
		Players:     members,
		LastUpdated: h.now().UTC(),
	})
}

type careerResponse struct {
	Player  string          `json:"player"`
	Team    string          `json:"team,omitempty"`
	Deep    bool            `json:"deep"`
	Seasons []career.Season `json:"seasons"`
}

func (h *Handler) GetCareerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCareerHistory")
	defer span.End()

	player := strings.TrimSpace(r.PathValue("player"))
	knownTeam := strings.TrimSpace(r.URL.Query().Get("team"))
	deep := isTruthy(r.URL.Query().Get("deep"))

	history, err := h.careerService.GetCareerHistory(ctx, player, knownTeam, deep)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons := history.Seasons
	if seasons == nil {
		seasons = []career.Season{}
	}
	writeSuccess(ctx, w, http.StatusOK, careerResponse{
		Player:  player,
		Team:    team.Normalize(knownTeam),
		Deep:    deep,
		Seasons: seasons,
	})
}

type teamStatsResponse struct {
	Team        string               `json:"team"`
	Info        team.Info            `json:"info"`
	Year        int                  `json:"year"`
	PlayerCount int                  `json:"playerCount"`
	Players     []stats.PlayerSeason `json:"players"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	year, err := h.yearParam(r, usecase.CurrentSeasonYear(h.now()))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, yearQuery{Year: year}); err != nil {
		writeError(ctx, w, err)
		return
	}

	canonical, players, err := h.statsService.GetTeamStats(ctx, r.PathValue("team"), year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	info, _ := team.Lookup(canonical)

	if players == nil {
		players = []stats.PlayerSeason{}
	}
	writeSuccess(ctx, w, http.StatusOK, teamStatsResponse{
		Team:        canonical,
		Info:        info,
		Year:        year,
		PlayerCount: len(players),
		Players:     players,
		LastUpdated: h.now().UTC(),
	})
}

type advancedStatsResponse struct {
	Team        string                       `json:"team"`
	Info        team.Info                    `json:"info"`
	Year        int                          `json:"year"`
	PlayerCount int                          `json:"playerCount"`
	Players     []stats.AdvancedPlayerSeason `json:"players"`
	LastUpdated time.Time                    `json:"lastUpdated"`
}

func (h *Handler) GetAdvancedStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdvancedStats")
	defer span.End()

	year, err := h.yearParam(r, usecase.CurrentSeasonYear(h.now()))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, yearQuery{Year: year}); err != nil {
		writeError(ctx, w, err)
		return
	}

	canonical, players, err := h.statsService.GetAdvancedStats(ctx, r.PathValue("team"), year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	info, _ := team.Lookup(canonical)

	if players == nil {
		players = []stats.AdvancedPlayerSeason{}
	}
	writeSuccess(ctx, w, http.StatusOK, advancedStatsResponse{
		Team:        canonical,
		Info:        info,
		Year:        year,
		PlayerCount: len(players),
		Players:     players,
		LastUpdated: h.now().UTC(),
	})
}

type statYearsResponse struct {
	CurrentSeason  int   `json:"currentSeason"`
	AvailableYears []int `json:"availableYears"`
}

func (h *Handler) ListStatYears(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatYears")
	defer span.End()

	now := h.now()
	writeSuccess(ctx, w, http.StatusOK, statYearsResponse{
		CurrentSeason:  usecase.CurrentSeasonYear(now),
		AvailableYears: usecase.AvailableStatYears(now),
	})
}

type refreshResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	TeamCount int    `json:"teamCount"`
	Season    int    `json:"season"`
}

func (h *Handler) ForceRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ForceRefresh")
	defer span.End()

	year, err := h.yearParam(r, h.portalSeason())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, yearQuery{Year: year}); err != nil {
		writeError(ctx, w, err)
		return
	}

	aggregate, err := h.transferService.ForceRefresh(ctx, year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refreshResponse{
		Success:   true,
		Message:   "cache refreshed",
		TeamCount: len(aggregate.Buckets),
		Season:    aggregate.Season,
	})
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
