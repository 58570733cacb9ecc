package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/infrastructure/integrator/geogouv"
	"github.com/telavenir/telecom-crm-api/pkg/apiErrors"
)

// GetCitiesByPostalCode consulta as comunas do código postal na API
// geo.api.gouv.fr, para preenchimento de endereço no cadastro de clientes
func GetCitiesByPostalCode(service geogouv.GeoGouvIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postalCode := r.URL.Query().Get("postalCode")
		if postalCode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro postalCode não fornecido", nil)
			return
		}

		cities, err := service.LookupCity(postalCode)
		if err != nil {
			logrus.Error("Erro ao consultar comunas por código postal:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o serviço de endereços", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cities); err != nil {
			logrus.Error("Erro ao enviar lista de comunas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
