package tools

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/maheshrc27/postflow-tools/internal/service"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

type Name string

const (
	CreatePost       Name = "create_post"
	SchedulePosts    Name = "schedule_posts"
	GetAnalytics     Name = "get_analytics"
	GenerateHashtags Name = "generate_hashtags"
	OptimizeMedia    Name = "optimize_media"
	GetTrending      Name = "get_trending"
	ManageCalendar   Name = "manage_calendar"
)

var ErrUnknownTool = errors.New("unknown tool")

//go:embed catalog.yaml
var catalogYAML []byte

type Definition struct {
	Name        Name           `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	InputSchema map[string]any `yaml:"input_schema" json:"input_schema"`
}

type handler func(ctx context.Context, raw json.RawMessage) (any, error)

type Registry struct {
	catalog  []Definition
	handlers map[Name]handler
	validate *validator.Validate
}

func NewRegistry(posts service.PostService, calendar service.CalendarService) (*Registry, error) {
	var catalog []Definition
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("error parsing tool catalog: %w", err)
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	r := &Registry{catalog: catalog, validate: validate}
	r.handlers = map[Name]handler{
		CreatePost:       bind(r, posts.CreatePost),
		SchedulePosts:    bind(r, posts.SchedulePosts),
		GetAnalytics:     bind(r, posts.GetAnalytics),
		GenerateHashtags: bind(r, posts.GenerateHashtags),
		OptimizeMedia:    bind(r, posts.OptimizeMedia),
		GetTrending:      bind(r, posts.GetTrending),
		ManageCalendar:   bind(r, calendar.Manage),
	}

	for _, def := range catalog {
		if _, ok := r.handlers[def.Name]; !ok {
			return nil, fmt.Errorf("tool %s has no handler", def.Name)
		}
	}

	return r, nil
}

// bind decodes and validates the arguments before calling fn.
func bind[A any, R any](r *Registry, fn func(context.Context, A) (R, error)) handler {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args A
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, &service.ValidationError{Msg: "invalid arguments: " + err.Error()}
			}
		}
		if err := r.validate.Struct(args); err != nil {
			return nil, formatValidationError(err)
		}
		return fn(ctx, args)
	}
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &service.ValidationError{Msg: err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.SplitN(fe.Namespace(), ".", 2)
		name := field[len(field)-1]
		switch fe.Tag() {
		case "required":
			messages = append(messages, name+" is required")
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", name, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", name, fe.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", name, fe.Param()))
		default:
			messages = append(messages, name+" is invalid")
		}
	}

	return &service.ValidationError{Msg: strings.Join(messages, "; ")}
}

func (r *Registry) Catalog() []Definition {
	out := make([]Definition, len(r.catalog))
	copy(out, r.catalog)
	return out
}

func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	h, ok := r.handlers[Name(name)]
	if !ok {
		slog.Info("unknown tool requested", "tool", name)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	result, err := h(ctx, args)
	if err != nil {
		slog.Info(err.Error(), "tool", name)
		return nil, err
	}

	return result, nil
}

// IsClientError reports whether err was caused by the caller's request.
func IsClientError(err error) bool {
	var verr *service.ValidationError
	return errors.Is(err, ErrUnknownTool) || errors.As(err, &verr)
}

// Envelope is the uniform failure payload returned to callers.
func Envelope(name string, err error) transfer.ToolError {
	return transfer.ToolError{Error: err.Error(), Tool: name}
}
