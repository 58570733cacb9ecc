package geogouvclient

import (
	"net/http"
	"time"

	"github.com/telavenir/telecom-crm-api/internal/config"
)

type Client interface {
	GetCommunes(params CommunesParams) (CommunesResponse, error)
}

type GeoGouvClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API de geolocalização.
func NewClient(cfg *config.Config) Client {
	return &GeoGouvClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
