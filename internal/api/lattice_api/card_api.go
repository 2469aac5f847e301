package lattice_api

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/services/lattice_services"
)

type CardHandler struct {
	Service *lattice_services.CardService
}

func NewCardHandler(s *lattice_services.CardService) *CardHandler {
	return &CardHandler{Service: s}
}

func (h *CardHandler) CardRoutes(r *mux.Router) {
	r.HandleFunc("/api/cards", h.createCard).Methods("POST")
	r.HandleFunc("/api/cards/{id:[0-9]+}", h.getCardByID).Methods("GET")
	r.HandleFunc("/api/cards/{id:[0-9]+}", h.updateCard).Methods("PUT")
	r.HandleFunc("/api/cards/{id:[0-9]+}", h.deleteCard).Methods("DELETE")
	r.HandleFunc("/api/cards/{cardId:[0-9]+}/assignTo/{userId:[0-9]+}", h.assignCardToUser).Methods("POST")
}

func (h *CardHandler) createCard(w http.ResponseWriter, r *http.Request) {
	var data lattice_model.CardCreateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	if utf8.RuneCountInString(data.Description) > maxDescriptionLen {
		writeMessage(w, http.StatusBadRequest, "Description must be at most %d characters long", maxDescriptionLen)
		return
	}

	id, result := h.Service.CreateCard(r.Context(), data)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, lattice_model.CreationResult{ID: id})
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "SectionId references a Section that does not exists")
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *CardHandler) getCardByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	card, result := h.Service.GetCardInfo(r.Context(), id)
	switch result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, card)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Card with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *CardHandler) updateCard(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var data lattice_model.CardUpdateDto
	if !decodeBody(w, r, &data) {
		return
	}
	defer r.Body.Close()

	if utf8.RuneCountInString(data.Description) > maxDescriptionLen {
		writeMessage(w, http.StatusBadRequest, "Description must be at most %d characters long", maxDescriptionLen)
		return
	}

	switch result := h.Service.UpdateCard(r.Context(), id, data); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Card with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *CardHandler) deleteCard(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	switch result := h.Service.DeleteCard(r.Context(), id); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Card with id %d was found", id)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}

func (h *CardHandler) assignCardToUser(w http.ResponseWriter, r *http.Request) {
	cardID := pathID(r, "cardId")
	userID := pathID(r, "userId")

	switch result := h.Service.AssignTo(r.Context(), cardID, userID); result {
	case lattice_services.Ok:
		writeJSON(w, http.StatusOK, nil)
	case lattice_services.NotFound:
		writeMessage(w, http.StatusNotFound, "No Card with id %d was found", cardID)
	case lattice_services.UserNotFound:
		writeMessage(w, http.StatusNotFound, "No User with id %d was found", userID)
	case lattice_services.UnknownError:
		writeJSON(w, http.StatusInternalServerError, nil)
	default:
		panic(fmt.Sprintf("unexpected result %v", result))
	}
}
