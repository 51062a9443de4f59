package models

// PushJob is an out-of-band push notification job submitted to the queue
type PushJob struct {
	UserID string            `json:"user_id"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}

// SMSJob is an out-of-band SMS job submitted to the queue
type SMSJob struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// CallResult is the synchronous outcome of a voice callback attempt
type CallResult struct {
	Answered bool   `json:"answered"`
	CallID   string `json:"call_id"`
}
