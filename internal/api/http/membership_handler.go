package http

import (
	"encoding/json"
	"net/http"

	"projectportal/internal/domain"
	"projectportal/internal/service"
)

type MembershipHandler struct {
	membershipSvc service.MembershipService
}

func NewMembershipHandler(membershipSvc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipSvc: membershipSvc}
}

func (h *MembershipHandler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	membership, err := h.membershipSvc.RequestJoin(r.Context(), principalFrom(r), projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "join request submitted, awaiting review", membership)
}

func (h *MembershipHandler) Review(w http.ResponseWriter, r *http.Request) {
	membershipID, ok := pathID(w, r, "membershipID")
	if !ok {
		return
	}
	var req struct {
		Decision string `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	membership, err := h.membershipSvc.Review(r.Context(), principalFrom(r), membershipID, domain.ReviewDecision(req.Decision))
	if err != nil {
		writeError(w, err)
		return
	}

	message := "join request rejected"
	if membership.Status == domain.MembershipStatusApproved {
		message = "join request approved"
	}
	writeJSON(w, http.StatusOK, message, membership)
}

func (h *MembershipHandler) SyncMembers(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	var req struct {
		AccountIDs []int32 `json:"account_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	if err := h.membershipSvc.SyncMembers(r.Context(), principalFrom(r), projectID, req.AccountIDs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "member list updated", nil)
}

func (h *MembershipHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	memberships, err := h.membershipSvc.ListPending(r.Context(), principalFrom(r), projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", memberships)
}
