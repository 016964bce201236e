package model

// SuccessResponse is the standard envelope for successful API responses.
// The frontend keys off the "success" flag before reading "data".
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the standard envelope for failed API responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ChurchInfo describes the church itself: contact details, service times,
// and social links. It is served from configuration, not from the store.
type ChurchInfo struct {
	Name         string            `json:"name" yaml:"name" mapstructure:"name"`
	Address      string            `json:"address" yaml:"address" mapstructure:"address"`
	Phone        string            `json:"phone" yaml:"phone" mapstructure:"phone"`
	Email        string            `json:"email" yaml:"email" mapstructure:"email"`
	Description  string            `json:"description" yaml:"description" mapstructure:"description"`
	ServiceTimes map[string]string `json:"service_times" yaml:"service_times" mapstructure:"service_times"`
	SocialLinks  map[string]string `json:"social_links" yaml:"social_links" mapstructure:"social_links"`
}
