package geogouv

import (
	geogouvdomain "github.com/telavenir/telecom-crm-api/infrastructure/integrator/geogouv/domain"
	"github.com/telavenir/telecom-crm-api/infrastructure/integrator/geogouv/geogouvclient"
	"github.com/telavenir/telecom-crm-api/internal/config"
)

// GeoGouvIntegrator expõe a busca de comunas por código postal, usada no
// autocomplete de endereço das fichas de cliente. É um colaborador externo do
// CRM; o motor de comissões não depende dele.
type GeoGouvIntegrator interface {
	LookupCity(postalCode string) ([]geogouvdomain.City, error)
}

type GeoGouvService struct {
	cfg    *config.Config
	Client geogouvclient.Client
}

func New(cfg *config.Config, client geogouvclient.Client) GeoGouvIntegrator {
	return &GeoGouvService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GeoGouvService) LookupCity(postalCode string) ([]geogouvdomain.City, error) {
	resp, err := s.Client.GetCommunes(geogouvclient.CommunesParams{
		PostalCode: postalCode,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
