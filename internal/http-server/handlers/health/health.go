package health

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type Status struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func Handler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Status{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
