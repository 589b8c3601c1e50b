package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vinted/internal/app"
	"github.com/MKhiriev/go-vinted/internal/utils"
	"github.com/MKhiriev/go-vinted/models"
)

func (h *Handler) publishOffer(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	if err := h.parseForm(w, r); err != nil {
		writeError(w, r, err)
		return
	}

	pictures, err := formFiles(r, "pictures")
	if err != nil {
		writeError(w, r, err)
		return
	}

	offer, err := h.services.OfferService.PublishOffer(r.Context(), user, models.PublishOfferRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Condition:   r.FormValue("condition"),
		City:        r.FormValue("city"),
		Brand:       r.FormValue("brand"),
		Size:        r.FormValue("size"),
		Color:       r.FormValue("color"),
		Pictures:    pictures,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, offer, http.StatusCreated)
}

func (h *Handler) getOffers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := h.services.OfferService.GetOffers(r.Context(), models.OfferQuery{
		Title:    query.Get("title"),
		PriceMin: query.Get("priceMin"),
		PriceMax: query.Get("priceMax"),
		Sort:     query.Get("sort"),
		Page:     query.Get("page"),
		Limit:    query.Get("limit"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.services.OfferService.GetOffer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, offer, http.StatusOK)
}

func (h *Handler) modifyOffer(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	if err := h.parseForm(w, r); err != nil {
		writeError(w, r, err)
		return
	}

	pictures, err := formFiles(r, "pictures")
	if err != nil {
		writeError(w, r, err)
		return
	}

	offer, err := h.services.OfferService.ModifyOffer(r.Context(), user, chi.URLParam(r, "id"), models.ModifyOfferRequest{
		Title:       r.FormValue("newTitle"),
		Description: r.FormValue("newDescription"),
		Price:       r.FormValue("newPrice"),
		Condition:   r.FormValue("newCondition"),
		City:        r.FormValue("newCity"),
		Brand:       r.FormValue("newBrand"),
		Size:        r.FormValue("newSize"),
		Color:       r.FormValue("newColor"),
		Pictures:    pictures,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, fmt.Sprintf(app.MsgOfferModified, offer.Title, user.Account.Username), http.StatusOK)
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	offer, err := h.services.OfferService.DeleteOffer(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, fmt.Sprintf(app.MsgOfferDeleted, offer.Title, user.Account.Username), http.StatusOK)
}
