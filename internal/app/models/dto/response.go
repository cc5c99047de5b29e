package dto

// APIResponse is the standard response envelope: all success responses carry
// success=true plus data and/or message; all failures carry success=false plus
// a message.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewDataResponse creates a success response wrapping a payload
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewMessageResponse creates a success response carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// NewErrorResponse creates a failure response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
