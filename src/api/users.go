package api

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// createUser is a demo responder: it validates the payload and echoes it
// back without touching a user database.
func (h *Handler) createUser(req events.APIGatewayV2HTTPRequest, log *logrus.Entry) events.APIGatewayV2HTTPResponse {
	raw, err := requestBody(req)
	if err != nil {
		return respond(400, errorEnvelope{Error: "Invalid request", Message: "request body is not valid base64"})
	}

	var body map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return respond(400, errorEnvelope{Error: "Invalid request", Message: "request body is not valid JSON"})
		}
	}

	userID := body["id"]
	name := body["name"]

	if falsy(userID) || falsy(name) {
		return respond(400, errorEnvelope{Error: `Missing "id" or "name"`})
	}

	log.WithFields(logrus.Fields{"user_id": userID, "name": name}).Info("Processing user")

	return respond(200, map[string]interface{}{
		"message": "User processed successfully",
		"user":    map[string]interface{}{"id": userID, "name": name},
		"note":    "Demo response - user database not configured",
	})
}

// falsy mirrors truthiness for decoded JSON scalars: null, "", false and 0
// all count as missing.
func falsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}
