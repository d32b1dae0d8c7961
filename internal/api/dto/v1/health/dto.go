package health

// HealthResponse reports build information and live session count
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	Uptime    string `json:"uptime"`
	Sessions  int    `json:"sessions"`
}
