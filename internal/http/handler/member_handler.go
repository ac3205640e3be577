package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/neutralpress/member-service/internal/domain"
	"github.com/neutralpress/member-service/internal/http/middleware"
	"github.com/neutralpress/member-service/internal/http/response"
	"github.com/neutralpress/member-service/internal/service"
)

type MemberHandler struct {
	memberSvc service.MemberServiceInterface
}

func NewMemberHandler(memberSvc service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func (h *MemberHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	msg, err := h.memberSvc.RegisterMember(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, map[string]any{"message": msg})
}

func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	pair, err := h.memberSvc.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, pair)
}

func (h *MemberHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	var req service.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.memberSvc.UpdatePassword(r.Context(), claims.Subject, req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MemberHandler) SendPasswordResetCode(w http.ResponseWriter, r *http.Request) {
	var req service.FindPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.memberSvc.SendPasswordResetCode(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MemberHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req service.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.memberSvc.VerifyCode(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MemberHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req service.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.memberSvc.ResetPassword(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps classified rejections to their documented status and
// numeric code; anything else is an internal fault and stays opaque.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		response.Error(w, r, authErr.Status, authErr.Kind, authErr.Message, map[string]any{"code": authErr.Code})
		return
	}
	response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}
