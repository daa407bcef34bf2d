package api

// TaskPayload is the request body for creating or updating a task. Updates
// use the same shape as creates and replace the stored fields wholesale: an
// omitted description reverts to null and an omitted completed flag reverts
// to false.
type TaskPayload struct {
	Title       string  `json:"title"       validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Completed   bool    `json:"completed"`
}

// RootResponse is the informational body served at GET /.
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
	Metrics string `json:"metrics"`
}

// HealthResponse is the GET /health body, shaped for liveness probes.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}
