package lattice_api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/services/lattice_services"
)

type TeamHandler struct {
	Service *lattice_services.TeamService
}

func NewTeamHandler(s *lattice_services.TeamService) *TeamHandler {
	return &TeamHandler{Service: s}
}

func (h *TeamHandler) TeamRoutes(r *mux.Router) {
	r.HandleFunc("/api/teams", h.createTeam).Methods("POST")
	r.HandleFunc("/api/teams", h.getAllTeams).Methods("GET")
	r.HandleFunc("/api/teams/{id:[0-9]+}", h.getTeamByID).Methods("GET")
	r.HandleFunc("/api/teams/{id:[0-9]+}", h.updateTeam).Methods("PUT")
	r.HandleFunc("/api/teams/{id:[0-9]+}", h.deleteTeam).Methods("DELETE")
	r.HandleFunc("/api/teams/{id:[0-9]+}/boards", h.getTeamBoards).Methods("GET")
}

// createTeam seeds the owner's membership with a follow-up call after the
// team commit. The two writes are not atomic; a seeding failure leaves the
// team in place and is only logged.
func (h *TeamHandler) createTeam(w http.ResponseWriter, r *http.Request) {
	var data lattice_model.TeamCreateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	id, result := h.Service.CreateTeam(r.Context(), data)

	if result == lattice_services.Ok {
		if seed := h.Service.AddMember(r.Context(), id, data.OwnerID); seed != lattice_services.Ok {
			logrus.WithFields(logrus.Fields{
				"teamId": id,
				"userId": data.OwnerID,
				"result": seed.String(),
			}).Error("failed to seed owner membership")
		}
	}

	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, lattice_model.CreationResult{ID: id})
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "OwnerId references a User that does not exists")
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *TeamHandler) getAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, result := h.Service.ListTeams(r.Context())
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, teams)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *TeamHandler) getTeamByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	team, result := h.Service.GetTeamInfo(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, team)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Team with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *TeamHandler) updateTeam(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var data lattice_model.TeamUpdateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	switch result := h.Service.UpdateTeam(r.Context(), id, data); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Team with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *TeamHandler) deleteTeam(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	switch result := h.Service.DeleteTeam(r.Context(), id); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Team with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *TeamHandler) getTeamBoards(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	boards, result := h.Service.ListBoards(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, boards)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Team with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}
