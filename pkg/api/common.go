package api

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type LogoutResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
