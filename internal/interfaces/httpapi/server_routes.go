package httpapi

import "net/http"

func registerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/health", handler.Health)
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/transfers", handler.ListTransfers)
	mux.HandleFunc("GET /api/transfers/{team}", handler.GetTeamTransfers)
	mux.HandleFunc("GET /api/roster/{team}", handler.GetRoster)
	mux.HandleFunc("GET /api/career/{player}", handler.GetCareerHistory)
	mux.HandleFunc("GET /api/stats/years", handler.ListStatYears)
	mux.HandleFunc("GET /api/stats/{team}", handler.GetTeamStats)
	mux.HandleFunc("GET /api/stats/advanced/{team}", handler.GetAdvancedStats)
	mux.HandleFunc("POST /api/refresh", handler.ForceRefresh)
}
