package api

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// Every response, errors included, goes out with open CORS.
var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type notFoundEnvelope struct {
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

func respond(status int, payload interface{}) events.APIGatewayV2HTTPResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		status = 500
		body = []byte(`{"error":"Internal server error","message":"failed to encode response"}`)
	}

	// Each response gets its own copy so a handler mutating resp.Headers
	// cannot poison later responses.
	headers := make(map[string]string, len(corsHeaders))
	for k, v := range corsHeaders {
		headers[k] = v
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}
