package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"wayfare.openjourney.org/internal/models"
	"wayfare.openjourney.org/internal/planner"
)

const (
	InputKeyPrefix  = "input-"
	OutputKeyPrefix = "output-"

	// NoRouteMessage is the fixed reply when a query cannot be answered:
	// unparseable payload, unresolvable endpoints, or a planner failure.
	NoRouteMessage = "no route found"
)

func isInputKey(key string) bool {
	return strings.HasPrefix(key, InputKeyPrefix) && len(key) > len(InputKeyPrefix)
}

func userIDFromKey(key string) (string, bool) {
	if !isInputKey(key) {
		return "", false
	}
	return key[len(InputKeyPrefix):], true
}

// queryPayload is the wire form of one trip query.
type queryPayload struct {
	Src             string    `json:"src" validate:"required"`
	Dst             string    `json:"dst" validate:"required"`
	DepartureDate   string    `json:"departureDate" validate:"required,datetime=2006-01-02"`
	PriceRange      []float64 `json:"priceRange" validate:"max=2"`
	TimeTravelRange []float64 `json:"timeTravelRange" validate:"max=2"`
}

// QueryService consumes trip queries from the message channel, runs the
// planner, and publishes the rendered reply for the asking user.
type QueryService struct {
	consumer  Consumer
	publisher Publisher
	planner   *planner.Planner
	logger    *slog.Logger
	validate  *validator.Validate
}

func NewQueryService(consumer Consumer, publisher Publisher, p *planner.Planner, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryService{
		consumer:  consumer,
		publisher: publisher,
		planner:   p,
		logger:    logger,
		validate:  validator.New(),
	}
}

// Run processes messages until the context ends or the consumer channel
// closes. Messages without an input key are ignored; a malformed payload is
// answered with the fixed error reply and never stops the loop.
func (s *QueryService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.consumer.Messages():
			if !ok {
				return
			}
			userID, ok := userIDFromKey(msg.Key)
			if !ok {
				s.logger.Debug("ignoring message with non-input key", slog.String("key", msg.Key))
				continue
			}
			s.handle(ctx, userID, msg)
		}
	}
}

func (s *QueryService) handle(ctx context.Context, userID string, msg Message) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while handling query",
				slog.String("user_id", userID), slog.Any("panic", r))
		}
	}()

	query, err := s.parseQuery(msg.Body)
	if err != nil {
		s.logger.Warn("rejecting malformed query",
			slog.String("user_id", userID), slog.String("error", err.Error()))
		s.reply(ctx, userID, NoRouteMessage)
		return
	}

	result, err := s.planner.Plan(ctx, query)
	if err != nil {
		if err != planner.ErrNoRoute {
			s.logger.Error("planner failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
		s.reply(ctx, userID, NoRouteMessage)
		return
	}

	s.reply(ctx, userID, result.Rendered)
}

func (s *QueryService) reply(ctx context.Context, userID, body string) {
	key := OutputKeyPrefix + userID
	if err := s.publisher.Publish(ctx, key, []byte(body)); err != nil {
		s.logger.Error("failed to publish reply", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *QueryService) parseQuery(body []byte) (models.Query, error) {
	var payload queryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.Query{}, fmt.Errorf("decode payload: %w", err)
	}
	if err := s.validate.Struct(payload); err != nil {
		return models.Query{}, fmt.Errorf("validate payload: %w", err)
	}

	from, err := parseCoordinates(payload.Src)
	if err != nil {
		return models.Query{}, fmt.Errorf("src: %w", err)
	}
	to, err := parseCoordinates(payload.Dst)
	if err != nil {
		return models.Query{}, fmt.Errorf("dst: %w", err)
	}
	date, err := time.Parse("2006-01-02", payload.DepartureDate)
	if err != nil {
		return models.Query{}, fmt.Errorf("departureDate: %w", err)
	}

	return models.Query{
		From:          from,
		To:            to,
		DepartureDate: date,
		PriceRange:    payload.PriceRange,
		TimeRange:     payload.TimeTravelRange,
	}, nil
}

// parseCoordinates reads a "lat,lon" pair.
func parseCoordinates(value string) (models.CoordinatePoint, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return models.CoordinatePoint{}, fmt.Errorf("coordinates %q: want \"lat,lon\"", value)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.CoordinatePoint{}, fmt.Errorf("latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.CoordinatePoint{}, fmt.Errorf("longitude %q: %w", parts[1], err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return models.CoordinatePoint{}, fmt.Errorf("coordinates %q out of range", value)
	}
	return models.CoordinatePoint{Lat: lat, Lon: lon}, nil
}
