package health

import (
	"net/http"

	"glow/shared/constant"
	"glow/shared/timezone"
	"glow/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health-check", handler.HealthCheck)
}

// HealthCheck reports service liveness.
// @Summary Health check
// @Description Report service liveness with the current server time.
// @Tags Health
// @Produce json
// @Success 200 {object} health.HealthResponse
// @Router /health-check [get]
func (handler *Handler) HealthCheck(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: timezone.Now().Format(constant.TimestampFormat),
	})
}
