package lattice_api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/services/lattice_services"
)

type UserHandler struct {
	Service *lattice_services.UserService
}

func NewUserHandler(s *lattice_services.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

func (h *UserHandler) UserRoutes(r *mux.Router) {
	r.HandleFunc("/api/users", h.createUser).Methods("POST")
	r.HandleFunc("/api/users", h.getAllUsers).Methods("GET")
	r.HandleFunc("/api/users/{id:[0-9]+}", h.getUserByID).Methods("GET")
	r.HandleFunc("/api/users/{id:[0-9]+}", h.updateUser).Methods("PUT")
	r.HandleFunc("/api/users/{id:[0-9]+}", h.deleteUser).Methods("DELETE")
	r.HandleFunc("/api/users/{id:[0-9]+}/teams", h.getUserTeams).Methods("GET")
	r.HandleFunc("/api/users/{id:[0-9]+}/cards", h.getUserAssignedCards).Methods("GET")
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var data lattice_model.UserCreateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	id, result := h.Service.CreateUser(r.Context(), data)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, lattice_model.CreationResult{ID: id})
	case lattice_services.InvalidEmail:
		writeMessage(w, http.StatusBadRequest, "Invalid E-mail address")
	case lattice_services.EmailAlreadyTaken:
		writeMessage(w, http.StatusBadRequest, "E-mail address is already in use")
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *UserHandler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, result := h.Service.ListUsers(r.Context())
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, users)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *UserHandler) getUserByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	user, result := h.Service.GetUserInfo(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, user)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No User with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var data lattice_model.UserUpdateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	switch result := h.Service.UpdateUser(r.Context(), id, data); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No User with id %d was found", id)
	case lattice_services.InvalidEmail:
		writeMessage(w, http.StatusBadRequest, "Invalid E-mail address")
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	switch result := h.Service.DeleteUser(r.Context(), id); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No User with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *UserHandler) getUserTeams(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	teams, result := h.Service.ListTeams(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, teams)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No User with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *UserHandler) getUserAssignedCards(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	cards, result := h.Service.ListAssignedCards(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, cards)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No User with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}
