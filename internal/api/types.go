package api

type MessageResponse struct {
	Message string `json:"message"`
}

type GenerateResponse struct {
	Response string `json:"response"`
}

type TablesResponse struct {
	Tables []string `json:"tables"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
