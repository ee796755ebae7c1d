package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/watchasset/watchasset/internal/watchasset/service"
	"github.com/watchasset/watchasset/pkg/httpx"
	"github.com/watchasset/watchasset/pkg/slogx"
	"github.com/watchasset/watchasset/pkg/watchsdk"
)

// UserWatchListHandler serves GET /user-watches.
type UserWatchListHandler struct {
	UserWatchService *service.UserWatchService
}

// ServeHTTP godoc
//
//	@Summary		List the caller's collection
//	@Description	Returns the authenticated user's collection entries with watch details.
//	@Tags			Collection
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		watchsdk.UserWatch
//	@Failure		401	{object}	watchsdk.APIError
//	@Failure		500	{object}	watchsdk.APIError
//	@Router			/user-watches [get].
func (h *UserWatchListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		watchsdk.ErrUnauthorized.WriteError(w)
		return
	}

	entries, err := h.UserWatchService.ListCollection(ctx, userID)
	if err != nil {
		log.Error("failed to list collection", "user_id", userID, "err", err)
		watchsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, entries)
}

// UserWatchCreateHandler serves POST /user-watches.
type UserWatchCreateHandler struct {
	UserWatchService *service.UserWatchService
}

// addUserWatchRequest tolerates purchasePrice arriving as either a JSON
// string ("15000") or a bare number (15000); web forms produce both.
type addUserWatchRequest struct {
	WatchID       string     `json:"watchId"`
	PurchasePrice flexString `json:"purchasePrice"`
	PurchaseDate  string     `json:"purchaseDate"`
}

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

// ServeHTTP godoc
//
//	@Summary		Add a watch to the collection
//	@Description	Creates a collection entry for the authenticated user. purchasePrice
//	@Description	and purchaseDate are optional.
//	@Tags			Collection
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		watchsdk.AddUserWatchRequest	true	"watchId, purchasePrice?, purchaseDate?"
//	@Success		201		{object}	watchsdk.UserWatch
//	@Failure		400		{object}	watchsdk.APIError	"Missing watchId, invalid price, or duplicate"
//	@Failure		401		{object}	watchsdk.APIError
//	@Failure		404		{object}	watchsdk.APIError	"Unknown watchId"
//	@Router			/user-watches [post].
func (h *UserWatchCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		watchsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req addUserWatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		watchsdk.ErrValidation.WithDescription("malformed JSON body").WriteError(w)
		return
	}

	entry, err := h.UserWatchService.AddToCollection(
		ctx, userID, req.WatchID, string(req.PurchasePrice), req.PurchaseDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingWatchID):
			watchsdk.ErrValidation.WithDescription("watchId is required").WriteError(w)
		case errors.Is(err, service.ErrInvalidPurchasePrice):
			watchsdk.ErrValidation.WithDescription("purchasePrice must be a number").WriteError(w)
		case errors.Is(err, service.ErrInvalidPurchaseDate):
			watchsdk.ErrValidation.WithDescription("purchaseDate must be an ISO date").WriteError(w)
		case errors.Is(err, service.ErrDuplicateUserWatch):
			watchsdk.ErrAlreadyInCollection.WriteError(w)
		case errors.Is(err, service.ErrWatchNotFound):
			watchsdk.ErrNotFound.WithDescription("watch not found").WriteError(w)
		default:
			log.Error("failed to add to collection", "user_id", userID, "err", err)
			watchsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, entry)
}

// UserWatchDeleteHandler serves DELETE /user-watches/{id}.
type UserWatchDeleteHandler struct {
	UserWatchService *service.UserWatchService
}

// ServeHTTP godoc
//
//	@Summary		Remove a watch from the collection
//	@Description	Deletes one collection entry owned by the authenticated user.
//	@Tags			Collection
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Collection entry id"
//	@Success		204	"Removed"
//	@Failure		401	{object}	watchsdk.APIError
//	@Failure		404	{object}	watchsdk.APIError
//	@Router			/user-watches/{id} [delete].
func (h *UserWatchDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		watchsdk.ErrUnauthorized.WriteError(w)
		return
	}

	err := h.UserWatchService.RemoveFromCollection(ctx, r.PathValue("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserWatchNotFound) {
			watchsdk.ErrNotFound.WithDescription("watch not found in your collection").WriteError(w)
			return
		}
		log.Error("failed to remove from collection", "user_id", userID, "err", err)
		watchsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
