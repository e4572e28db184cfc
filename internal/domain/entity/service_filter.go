package entity

// ServiceFilter is a domain-level filter for querying services.
// Used by repository layer to avoid coupling with delivery DTOs.
type ServiceFilter struct {
	Query      string // substring matched against name OR description (ILIKE)
	ProviderID string // filter by owning provider
}
