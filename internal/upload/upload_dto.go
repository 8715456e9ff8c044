package upload

// FileUpload is an uploaded file held in memory.
type FileUpload struct {
	Name    string
	Content []byte
}

type UploadResponse struct {
	JobID string `json:"job_id"`
}
