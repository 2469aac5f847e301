package lattice_api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/services/lattice_services"
)

// TeamMemberHandler serves the membership routes nested under a team.
type TeamMemberHandler struct {
	Service *lattice_services.TeamService
}

func NewTeamMemberHandler(s *lattice_services.TeamService) *TeamMemberHandler {
	return &TeamMemberHandler{Service: s}
}

func (h *TeamMemberHandler) TeamMemberRoutes(r *mux.Router) {
	r.HandleFunc("/api/teams/{teamId:[0-9]+}/members", h.getTeamMembers).Methods("GET")
	r.HandleFunc("/api/teams/{teamId:[0-9]+}/members", h.addMember).Methods("POST")
	r.HandleFunc("/api/teams/{teamId:[0-9]+}/members/{userId:[0-9]+}", h.removeMember).Methods("DELETE")
}

func (h *TeamMemberHandler) getTeamMembers(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "teamId")

	members, result := h.Service.ListMembers(r.Context(), teamID)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, members)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Team with id %d was found", teamID)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *TeamMemberHandler) addMember(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "teamId")

	var data lattice_model.UserJoinTeamDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	switch result := h.Service.AddMember(r.Context(), teamID, data.UserID); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Team with id %d was found", teamID)
	case lattice_services.UserNotFound:
		writeMessage(w, http.StatusNotFound, "No User with id %d was found", data.UserID)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *TeamMemberHandler) removeMember(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "teamId")
	userID := pathID(r, "userId")

	switch result := h.Service.RemoveMember(r.Context(), teamID, userID); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No User with id %d was found in Team with id %d", userID, teamID)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}
