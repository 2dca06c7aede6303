package response

import "time"

// Health is the response for GET /health.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	GoVersion string    `json:"goVersion"`
}

// Root is the informational response for GET /.
type Root struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// DebugEnv is a masked configuration snapshot for GET /debug-env.
// Credentials are reported as present/absent, never echoed.
type DebugEnv struct {
	AppEnv          string `json:"appEnv"`
	OcrLanguage     string `json:"ocrLanguage"`
	UploadDir       string `json:"uploadDir"`
	GeminiModel     string `json:"geminiModel"`
	GeminiKeyLoaded bool   `json:"geminiKeyLoaded"`
	AuthConfigured  bool   `json:"authConfigured"`
}
