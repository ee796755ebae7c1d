package http

import (
	"errors"
	"net/http"

	"github.com/watchasset/watchasset/internal/watchasset/service"
	"github.com/watchasset/watchasset/pkg/httpx"
	"github.com/watchasset/watchasset/pkg/slogx"
	"github.com/watchasset/watchasset/pkg/watchsdk"
)

// WatchListHandler serves GET /watches.
type WatchListHandler struct {
	WatchService *service.WatchService
}

// ServeHTTP godoc
//
//	@Summary		List watches
//	@Description	Returns every watch with its price history (newest first) and the
//	@Description	market summary derived from the two most recent price points.
//	@Tags			Watches
//	@Produce		json
//	@Success		200	{array}		watchsdk.Watch
//	@Failure		500	{object}	watchsdk.APIError
//	@Router			/watches [get].
func (h *WatchListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	watches, err := h.WatchService.ListWatches(ctx)
	if err != nil {
		log.Error("failed to list watches", "err", err)
		watchsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, watches)
}

// WatchGetHandler serves GET /watches/{id}.
type WatchGetHandler struct {
	WatchService *service.WatchService
}

// ServeHTTP godoc
//
//	@Summary		Get a watch
//	@Description	Returns a single watch with its full price history.
//	@Tags			Watches
//	@Produce		json
//	@Param			id	path		string	true	"Watch id"
//	@Success		200	{object}	watchsdk.Watch
//	@Failure		404	{object}	watchsdk.APIError
//	@Failure		500	{object}	watchsdk.APIError
//	@Router			/watches/{id} [get].
func (h *WatchGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	watch, err := h.WatchService.GetWatch(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrWatchNotFound) {
			watchsdk.ErrNotFound.WithDescription("watch not found").WriteError(w)
			return
		}
		log.Error("failed to load watch", "err", err)
		watchsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, watch)
}
