package api

// APIResponse единый конверт ответов портала: фронт проверяет поле success и читает data.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func successResponse(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func errorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
