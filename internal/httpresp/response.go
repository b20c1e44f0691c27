package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse envuelve los listados paginables con su total, para que
// el frontend no cuente elementos a mano.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
