// README: Favorites handlers (list/save/remove/check).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/favorites"
	"farecast/internal/types"
)

type FavoritesHandler struct {
	favorites *favorites.Service
}

func NewFavoritesHandler(svc *favorites.Service) *FavoritesHandler {
	return &FavoritesHandler{favorites: svc}
}

func (h *FavoritesHandler) List(c *gin.Context) {
	list, err := h.favorites.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if list == nil {
		list = []favorites.Favorite{}
	}
	writeJSON(c, http.StatusOK, gin.H{"favorites": list})
}

type saveFavoriteReq struct {
	Name        string         `json:"name"`
	Pickup      types.Location `json:"pickup"`
	Destination types.Location `json:"destination"`
}

func (h *FavoritesHandler) Save(c *gin.Context) {
	var req saveFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	id, err := h.favorites.Save(c.Request.Context(), favorites.Favorite{
		Name:        req.Name,
		Pickup:      req.Pickup,
		Destination: req.Destination,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"id": id})
}

func (h *FavoritesHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing favorite id")
		return
	}
	if err := h.favorites.Remove(c.Request.Context(), types.ID(id)); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Check reports whether the exact address pair is already pinned.
func (h *FavoritesHandler) Check(c *gin.Context) {
	pickup := c.Query("pickup")
	destination := c.Query("destination")
	if pickup == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "pickup and destination are required")
		return
	}

	ok, err := h.favorites.IsFavorite(c.Request.Context(), pickup, destination)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"is_favorite": ok})
}
