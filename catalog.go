package palworld

import (
	"net/http"
	"slices"
)

// Operation describes one entry in the endpoint catalog: the HTTP verb,
// the path under the base URL, the status code indicating success, and
// whether a JSON request or response body is part of the exchange.
// Every operation requires Basic Authentication.
//
// The catalog is the single source of truth consumed by both the
// blocking [Client] and the suspending [AsyncClient], which guarantees
// the two variants stay behaviorally identical.
type Operation struct {
	Name        string
	Method      string
	Path        string
	SuccessCode int
	HasRequest  bool
	HasResponse bool
}

var (
	OpGetInfo      = Operation{Name: "get_info", Method: http.MethodGet, Path: "/v1/api/info", SuccessCode: http.StatusOK, HasResponse: true}
	OpGetPlayers   = Operation{Name: "get_players", Method: http.MethodGet, Path: "/v1/api/players", SuccessCode: http.StatusOK, HasResponse: true}
	OpGetSettings  = Operation{Name: "get_settings", Method: http.MethodGet, Path: "/v1/api/settings", SuccessCode: http.StatusOK, HasResponse: true}
	OpGetMetrics   = Operation{Name: "get_metrics", Method: http.MethodGet, Path: "/v1/api/metrics", SuccessCode: http.StatusOK, HasResponse: true}
	OpPostAnnounce = Operation{Name: "post_announce", Method: http.MethodPost, Path: "/v1/api/announce", SuccessCode: http.StatusOK, HasRequest: true}
	OpPostKick     = Operation{Name: "post_kick", Method: http.MethodPost, Path: "/v1/api/kick", SuccessCode: http.StatusOK, HasRequest: true}
	OpPostBan      = Operation{Name: "post_ban", Method: http.MethodPost, Path: "/v1/api/ban", SuccessCode: http.StatusOK, HasRequest: true}
	OpPostUnban    = Operation{Name: "post_unban", Method: http.MethodPost, Path: "/v1/api/unban", SuccessCode: http.StatusOK, HasRequest: true}
	OpPostSave     = Operation{Name: "post_save", Method: http.MethodPost, Path: "/v1/api/save", SuccessCode: http.StatusOK}
	OpPostShutdown = Operation{Name: "post_shutdown", Method: http.MethodPost, Path: "/v1/api/shutdown", SuccessCode: http.StatusOK, HasRequest: true}
	OpPostStop     = Operation{Name: "post_stop", Method: http.MethodPost, Path: "/v1/api/stop", SuccessCode: http.StatusOK}
)

var catalog = []Operation{
	OpGetInfo,
	OpGetPlayers,
	OpGetSettings,
	OpGetMetrics,
	OpPostAnnounce,
	OpPostKick,
	OpPostBan,
	OpPostUnban,
	OpPostSave,
	OpPostShutdown,
	OpPostStop,
}

// Catalog returns a copy of the full operation table in declaration order.
func Catalog() []Operation {
	return slices.Clone(catalog)
}

// Describe looks up an operation by its catalog name (e.g. "get_info").
func Describe(name string) (Operation, bool) {
	for _, op := range catalog {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
