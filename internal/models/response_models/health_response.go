package response_models

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
