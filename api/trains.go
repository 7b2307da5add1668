package api

import (
	"net/http"

	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/gin-gonic/gin"
)

type TrainHandler struct {
	service trains.TrainUseCase
}

func NewTrainHandler(service trains.TrainUseCase) *TrainHandler {
	return &TrainHandler{service: service}
}

func (h *TrainHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.search)
	router.GET("/:id", h.get)
}

func (h *TrainHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/sold-out", h.soldOut)
}

func (h *TrainHandler) search(c *gin.Context) {
	trains, err := h.service.Search(c.Request.Context(), c.Query("route"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trains)
}

func (h *TrainHandler) get(c *gin.Context) {
	train, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, train)
}

func (h *TrainHandler) soldOut(c *gin.Context) {
	trains, err := h.service.SoldOut(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trains)
}
