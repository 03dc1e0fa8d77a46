package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"stress-insights-api/src/insights"
	"stress-insights-api/src/types"
	"stress-insights-api/src/utils"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store is the key-value persistence the handler dispatches against.
// Implemented by dynamo.InsightStore.
type Store interface {
	Get(ctx context.Context, date string) (map[string]interface{}, bool, error)
	Put(ctx context.Context, date string, insight map[string]interface{}) (map[string]interface{}, error)
}

var availableEndpoints = []string{
	"GET /daily-insights",
	"POST /daily-insights",
	"GET /insights",
	"GET /insights/summary",
	"GET /insights/visualization",
	"POST /users",
}

// Handler routes API Gateway HTTP events to the insight operations. One
// request, one synchronous response; nothing is retried or queued.
type Handler struct {
	store     Store
	generator *insights.Generator
	log       *logrus.Logger
	now       func() time.Time
}

func NewHandler(store Store, generator *insights.Generator, log *logrus.Logger) *Handler {
	return &Handler{
		store:     store,
		generator: generator,
		log:       log,
		now:       time.Now,
	}
}

// Handle dispatches on the route key. Every failure is converted to an HTTP
// response here; nothing propagates past the request boundary.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (resp events.APIGatewayV2HTTPResponse, err error) {
	requestID := req.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	log := h.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"route":      req.RouteKey,
	})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Unhandled failure during dispatch")
			resp = respond(500, errorEnvelope{
				Error:   "Internal server error",
				Message: fmt.Sprintf("%v", r),
			})
			err = nil
		}
	}()

	log.Info("Dispatching request")

	switch req.RouteKey {
	case "GET /daily-insights":
		return h.getDailyInsight(ctx, req, log), nil

	case "POST /daily-insights":
		return h.postDailyInsight(ctx, req, log), nil

	case "GET /insights":
		return respond(200, insights.StaticAnalysis), nil

	case "GET /insights/summary":
		return respond(200, insights.DatasetSummary), nil

	case "GET /insights/visualization":
		return respond(200, insights.Visualization), nil

	case "POST /users":
		return h.createUser(req, log), nil

	default:
		return respond(404, notFoundEnvelope{
			Error:              "Not found",
			AvailableEndpoints: availableEndpoints,
		}), nil
	}
}

// getDailyInsight returns the stored record for the date on a hit, or a
// freshly generated one annotated as non-persisted on a miss. A miss never
// writes to the table.
func (h *Handler) getDailyInsight(ctx context.Context, req events.APIGatewayV2HTTPRequest, log *logrus.Entry) events.APIGatewayV2HTTPResponse {
	date := req.QueryStringParameters["date"]
	if date == "" {
		date = utils.FormatDate(h.now().UTC())
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return respond(400, errorEnvelope{Error: "Invalid request", Message: err.Error()})
	}

	item, found, err := h.store.Get(ctx, date)
	if err != nil {
		log.WithField("date", date).WithError(err).Error("Failed to fetch daily insight")
		return respond(500, errorEnvelope{Error: "Internal server error", Message: err.Error()})
	}

	if found {
		return respond(200, item)
	}

	insight := h.generator.Generate(day)
	insight.Note = insights.GeneratedNote

	return respond(200, insight)
}

// postDailyInsight persists the caller-supplied insight object verbatim, or
// a generated one when the body carries none, and answers 201.
func (h *Handler) postDailyInsight(ctx context.Context, req events.APIGatewayV2HTTPRequest, log *logrus.Entry) events.APIGatewayV2HTTPResponse {
	var body struct {
		Date     string                 `json:"date"`
		Insights map[string]interface{} `json:"insights"`
	}

	raw, err := requestBody(req)
	if err != nil {
		return respond(400, errorEnvelope{Error: "Invalid request", Message: "request body is not valid base64"})
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return respond(400, errorEnvelope{Error: "Invalid request", Message: "request body is not valid JSON"})
		}
	}

	date := body.Date
	if date == "" {
		date = utils.FormatDate(h.now().UTC())
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return respond(400, errorEnvelope{Error: "Invalid request", Message: err.Error()})
	}

	insight := body.Insights
	if insight == nil {
		insight = toItem(h.generator.Generate(day))
	}

	stored, err := h.store.Put(ctx, date, insight)
	if err != nil {
		log.WithField("date", date).WithError(err).Error("Failed to store daily insight")
		return respond(500, errorEnvelope{Error: "Internal server error", Message: err.Error()})
	}

	log.WithField("date", date).Info("Stored daily insight")

	return respond(201, map[string]interface{}{
		"message":  "Daily insights stored successfully",
		"date":     date,
		"insights": stored,
	})
}

func requestBody(req events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if req.Body == "" {
		return nil, nil
	}
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

// toItem flattens a generated insight into the map shape the store works
// with, so generated and caller-supplied records follow the same path.
func toItem(insight types.DailyInsight) map[string]interface{} {
	raw, _ := json.Marshal(insight)

	var item map[string]interface{}
	_ = json.Unmarshal(raw, &item)

	return item
}
