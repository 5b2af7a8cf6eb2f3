package server

import (
	"net/http"

	"github.com/getidex/idex/config"
	"github.com/getidex/idex/pkg/models"
	"github.com/getidex/idex/pkg/server/handlertools"
)

// HealthCheckResponse reports that the service is up and able to serve.
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// GetHealthHandler godoc
//
//	@Summary		Returns the service status
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthCheckResponse
//	@Router			/ [get]
func GetHealthHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := HealthCheckResponse{
			Status:  "OK",
			Message: "identity document extraction api is running",
			Version: config.VersionString,
		}

		if err := handlertools.EncodeJSON(w, res); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
