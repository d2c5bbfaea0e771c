package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"fioriforyou.com/app/internal/catalog"
	"fioriforyou.com/app/internal/http/middleware"
	"fioriforyou.com/app/internal/http/validation"
	"fioriforyou.com/app/internal/modules/cart"
	"fioriforyou.com/app/internal/modules/giftpack"
	"fioriforyou.com/app/internal/modules/orders"
	"fioriforyou.com/app/internal/modules/session"
	"fioriforyou.com/app/internal/shared/apperr"
)

// mustSession pulls the resolved shopper session off the context. The
// session middleware runs on every /api route, a miss is a programming
// error.
func mustSession(c *gin.Context) (session.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errors.New("session missing from context")))
		return session.Session{}, false
	}
	return sess, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fields := validation.FromBindError(err, dst)
		middleware.Fail(c, apperr.InvalidErr("Les données envoyées sont invalides.", fields))
		return false
	}
	return true
}

func paramInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr(
			fmt.Sprintf("Paramètre %q invalide.", name), nil))
		return 0, false
	}
	return n, true
}

// domainErr maps module errors onto apperr kinds so the error handler can
// pick the right status and public message.
func domainErr(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return apperr.NotFoundErr("Produit introuvable.")
	}
	var fetchErr *catalog.FetchError
	if errors.As(err, &fetchErr) {
		return apperr.UnavailableErr("Le catalogue est momentanément indisponible.", err)
	}

	var stockErr *cart.InsufficientStockError
	if errors.As(err, &stockErr) {
		return apperr.ConflictErr(fmt.Sprintf(
			"Stock insuffisant pour la taille %s (%d disponibles).",
			stockErr.Size, stockErr.Available))
	}

	var slotErr *giftpack.SlotIndexError
	if errors.As(err, &slotErr) {
		return apperr.InvalidErr("Emplacement de pack invalide.", nil)
	}
	var persoErr *giftpack.PersonalizationTooLongError
	if errors.As(err, &persoErr) {
		return apperr.InvalidErr(fmt.Sprintf(
			"La personnalisation est limitée à %d caractères.", persoErr.Max), nil)
	}
	switch {
	case errors.Is(err, giftpack.ErrSizeRequired):
		return apperr.InvalidErr("Veuillez sélectionner une taille.", nil)
	case errors.Is(err, giftpack.ErrNoSizesAvailable):
		return apperr.ConflictErr("Aucune taille disponible pour ce produit.")
	case errors.Is(err, giftpack.ErrEmptySlot):
		return apperr.InvalidErr("Cet emplacement est vide.", nil)
	case errors.Is(err, orders.ErrCartEmpty):
		return apperr.InvalidErr("Votre panier est vide.", nil)
	case errors.Is(err, orders.ErrMissingPendingOrder):
		return apperr.InvalidErr("Aucune commande en attente. Veuillez recommencer le paiement.", nil)
	case errors.Is(err, orders.ErrMissingUserDetails):
		return apperr.InvalidErr("Vos coordonnées sont manquantes. Veuillez les saisir.", nil)
	}

	var rejected *orders.RejectedError
	if errors.As(err, &rejected) {
		return apperr.ConflictErr("Commande refusée: " + rejected.Message)
	}

	return apperr.Wrap(err)
}
