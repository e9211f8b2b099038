package httptransport

import "net/http"

// ListUsers godoc
// @Summary List accounts
// @Description Owner only. Used to look up worker ids for assignment.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.User
// @Failure 403 {object} apiError
// @Router /api/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.owner(w, r)
	if !ok {
		return
	}
	users, err := h.users.ListUsers(r.Context(), actor)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUser godoc
// @Summary Get one account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} entity.User
// @Failure 400 {object} apiError
// @Failure 403 {object} apiError
// @Failure 404 {object} apiError
// @Router /api/users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.users.GetUser(r.Context(), actor, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
