package domain

// City é uma comuna devolvida pela API de geolocalização.
type City struct {
	Name        string   `json:"nom"`
	Code        string   `json:"code"`
	PostalCodes []string `json:"codesPostaux"`
}

// LookupParams são os parâmetros de consulta de comunas por código postal.
type LookupParams struct {
	PostalCode string
}
