package domain

// RunExportMeta describes an exported test run
type RunExportMeta struct {
	Host       string         `json:"host"`
	ProjectKey string         `json:"project_key"`
	Total      int            `json:"total"`
	Statuses   map[Status]int `json:"statuses"`
	Timestamp  string         `json:"timestamp"`
}

// RunExport is the file written instead of submitting a test run
type RunExport struct {
	Meta    RunExportMeta  `json:"meta"`
	Options map[string]any `json:"options,omitempty"`
	Items   Batch          `json:"items"`
}
