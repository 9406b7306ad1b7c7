package models

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    RegisterData `json:"data"`
}

// RegisterData carries the created user together with its first token.
type RegisterData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MessageResponse is a bare message body used by logout and error replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 body listing messages per field.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
