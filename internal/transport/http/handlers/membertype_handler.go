package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"socialgraph/internal/domain"
	"socialgraph/internal/service"
)

type MemberTypeHandler struct {
	memberTypeService *service.MemberTypeService
}

func NewMemberTypeHandler(memberTypeService *service.MemberTypeService) *MemberTypeHandler {
	return &MemberTypeHandler{memberTypeService: memberTypeService}
}

func (h *MemberTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	memberTypes, err := h.memberTypeService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list member types: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if memberTypes == nil {
		memberTypes = []domain.MemberType{}
	}

	writeJSON(w, http.StatusOK, memberTypes)
}

func (h *MemberTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	mt, err := h.memberTypeService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrMemberTypeNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Member type not found")
		} else {
			log.Printf("ERROR get member type: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, mt)
}

func (h *MemberTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateMemberTypeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	mt, err := h.memberTypeService.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		if errors.Is(err, service.ErrMemberTypeNotFound) {
			writeError(w, http.StatusBadRequest, "UNKNOWN_MEMBER_TYPE", "Member type does not exist")
		} else {
			log.Printf("ERROR update member type: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, mt)
}
