package models

import "encoding/json"

// CreateConfigurationRequest is the JSON body of POST /api/configurations.
// All three fields are required; the transport layer rejects requests with a
// missing app name, env, or payload before they reach the service.
type CreateConfigurationRequest struct {
	AppName string          `json:"app_name"`
	Env     string          `json:"env"`
	Data    json.RawMessage `json:"data"`
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
