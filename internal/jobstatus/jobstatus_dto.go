package jobstatus

type JobStatusResponse struct {
	JobID      string `json:"job_id"`
	StatusText string `json:"status_text"`
	Success    bool   `json:"success"`
	FinishedAt string `json:"finished_at"`
}
