package lattice_api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/services/lattice_services"
)

type BoardHandler struct {
	Service *lattice_services.BoardService
}

func NewBoardHandler(s *lattice_services.BoardService) *BoardHandler {
	return &BoardHandler{Service: s}
}

func (h *BoardHandler) BoardRoutes(r *mux.Router) {
	r.HandleFunc("/api/boards", h.createBoard).Methods("POST")
	r.HandleFunc("/api/boards/{id:[0-9]+}", h.getBoardByID).Methods("GET")
	r.HandleFunc("/api/boards/{id:[0-9]+}", h.updateBoard).Methods("PUT")
	r.HandleFunc("/api/boards/{id:[0-9]+}", h.deleteBoard).Methods("DELETE")
}

func (h *BoardHandler) createBoard(w http.ResponseWriter, r *http.Request) {
	var data lattice_model.BoardCreateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	id, result := h.Service.CreateBoard(r.Context(), data)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, lattice_model.CreationResult{ID: id})
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "TeamId references a Team that does not exists")
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *BoardHandler) getBoardByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	board, result := h.Service.GetBoardInfo(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, board)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Board with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *BoardHandler) updateBoard(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var data lattice_model.BoardUpdateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	switch result := h.Service.UpdateBoard(r.Context(), id, data); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Board with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *BoardHandler) deleteBoard(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	switch result := h.Service.DeleteBoard(r.Context(), id); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Board with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}
