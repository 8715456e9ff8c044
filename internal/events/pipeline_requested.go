package events

// PipelineRequestedTopic carries one message per uploaded file.
const PipelineRequestedTopic = "hr.employee.import.requested.v1"

const (
	HeaderMessageID   = "message_id"
	HeaderContentType = "content_type"

	ContentTypeJSON = "application/json"
)

// PipelineMessage names an uploaded object and the tenant it belongs to.
type PipelineMessage struct {
	FileName string `json:"fileName"`
	TenantID string `json:"tenantId"`
}
