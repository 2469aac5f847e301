package lattice_api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/services/lattice_services"
)

type SectionHandler struct {
	Service *lattice_services.SectionService
}

func NewSectionHandler(s *lattice_services.SectionService) *SectionHandler {
	return &SectionHandler{Service: s}
}

func (h *SectionHandler) SectionRoutes(r *mux.Router) {
	r.HandleFunc("/api/sections", h.createSection).Methods("POST")
	r.HandleFunc("/api/sections/{id:[0-9]+}", h.getSectionByID).Methods("GET")
	r.HandleFunc("/api/sections/{id:[0-9]+}", h.updateSection).Methods("PUT")
	r.HandleFunc("/api/sections/{id:[0-9]+}", h.deleteSection).Methods("DELETE")
	r.HandleFunc("/api/sections/{id:[0-9]+}/cards", h.getSectionCards).Methods("GET")
}

func (h *SectionHandler) createSection(w http.ResponseWriter, r *http.Request) {
	var data lattice_model.SectionCreateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	id, result := h.Service.CreateSection(r.Context(), data)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, lattice_model.CreationResult{ID: id})
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Board with id %d was found", data.BoardID)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *SectionHandler) getSectionByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	section, result := h.Service.GetSectionInfo(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, section)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Section with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *SectionHandler) updateSection(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var data lattice_model.SectionUpdateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	switch result := h.Service.UpdateSection(r.Context(), id, data); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Section with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *SectionHandler) deleteSection(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	switch result := h.Service.DeleteSection(r.Context(), id); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Section with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *SectionHandler) getSectionCards(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	cards, result := h.Service.ListCards(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, cards)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Section with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}
