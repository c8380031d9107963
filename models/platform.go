package models

// Platform A hardware or simulation platform as exposed by the job service.
type Platform struct {
	ID          string  `json:"platform_id"`
	Name        string  `json:"name"`
	Type        string  `json:"platform_type"`
	Description string  `json:"description,omitempty"`
	Version     string  `json:"version,omitempty"`
	MaxMemoryGB float64 `json:"max_memory_gb,omitempty"`
	IsAvailable bool    `json:"is_available"`
}

// Instance A platform instance. Listed with the legacy offset/limit
// convention by the job service.
type Instance struct {
	ID           string `json:"instance_id"`
	Name         string `json:"name,omitempty"`
	PlatformID   string `json:"platform_id"`
	PlatformName string `json:"platform_name,omitempty"`
	IsAvailable  bool   `json:"is_available"`
	IsActive     bool   `json:"is_active"`
	InUse        bool   `json:"in_use"`
	HealthStatus string `json:"health_status,omitempty"`
}
