package response

// Resp is the JSON body written for every failed request.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Detail    string `json:"detail"`
	Errors    any    `json:"errors,omitempty"`
}

// MessageResp is the JSON body for operations that only confirm success.
type MessageResp struct {
	Message string `json:"message"`
}
