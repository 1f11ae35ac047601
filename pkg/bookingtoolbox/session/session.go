// Package session provides the authentication tool, used to verify that the
// configured credentials can obtain a session token from the API.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neomcp/neobookings-mcp/pkg/bookingtoolbox/render"
	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
	"github.com/neomcp/neobookings-mcp/pkg/tools/toolbox"
)

const authSchema = `{
  "type": "object",
  "properties": {
    "language": {
      "type": "string",
      "description": "Language code for the request",
      "enum": ["es", "en", "fr", "de", "it", "pt"],
      "default": "es"
    }
  },
  "additionalProperties": false
}`

type authInput struct {
	Language string `json:"language"`
}

type authResult struct {
	TokenLength int
	Language    string
	Envelope    neobookings.Envelope
	Config      neobookings.Config
}

// Session provides the authentication tool.
type Session struct {
	cfg neobookings.Config
	log *slog.Logger
}

// New creates a Session toolset with the given API configuration.
func New(cfg neobookings.Config, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{cfg: cfg, log: log}
}

// Tools returns a ToolBox containing the authentication tool.
func (s *Session) Tools() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(s.authTool())

	return tb
}

func (s *Session) authTool() toolbox.Tool {
	return toolbox.Tool{
		Name: "authenticator_rq",
		Description: "Authenticate against the Neobookings API with the configured credentials and " +
			"report whether a session token was obtained. The token itself is never returned.",
		InputSchema: json.RawMessage(authSchema),
		Handler:     s.handleAuth,
	}
}

func (s *Session) handleAuth(ctx context.Context, input json.RawMessage) (string, error) {
	var in authInput
	if err := json.Unmarshal(input, &in); err != nil {
		return renderAuthFailure(&neobookings.ValidationError{Message: "invalid arguments: " + err.Error()}), nil
	}

	res, err := s.executeAuth(ctx, &in)
	if err != nil {
		s.log.Error("authentication check failed", "error", err)
		return renderAuthFailure(err), nil
	}

	return renderAuthSuccess(res), nil
}

func (s *Session) executeAuth(ctx context.Context, in *authInput) (*authResult, error) {
	lang := in.Language
	if lang == "" {
		lang = neobookings.DefaultLanguage
	}
	if !neobookings.ValidLanguage(lang) {
		return nil, &neobookings.ValidationError{
			Message: fmt.Sprintf("Invalid language code: %s. Valid options: %s", lang, strings.Join(neobookings.Languages, ", ")),
		}
	}

	s.log.Info("verifying credentials", "username", s.cfg.Username, "language", lang)

	env := neobookings.NewEnvelope(lang)
	client := neobookings.NewClient(s.cfg, neobookings.WithLogger(s.log))

	token, err := client.Authenticate(ctx, env)
	if err != nil {
		return nil, err
	}

	s.log.Info("credentials verified", "request_id", env.RequestID)

	return &authResult{
		TokenLength: len(token),
		Language:    lang,
		Envelope:    env,
		Config:      s.cfg,
	}, nil
}

func renderAuthSuccess(res *authResult) string {
	var b strings.Builder

	b.WriteString("Authentication Successful\n\n")
	b.WriteString("Session Information:\n")
	fmt.Fprintf(&b, "- Client Code: %s\n", res.Config.ClientCode)
	fmt.Fprintf(&b, "- System Code: %s\n", res.Config.SystemCode)
	fmt.Fprintf(&b, "- Username: %s\n", res.Config.Username)
	fmt.Fprintf(&b, "- API Base URL: %s\n", res.Config.BaseURL)
	fmt.Fprintf(&b, "- Token Received: Yes (%d characters)\n", res.TokenLength)
	fmt.Fprintf(&b, "- Language: %s\n", strings.ToUpper(res.Language))

	b.WriteString("\nRequest Details:\n")
	fmt.Fprintf(&b, "- Request ID: %s\n", res.Envelope.RequestID)
	fmt.Fprintf(&b, "- Timestamp: %s\n", res.Envelope.Timestamp)

	return b.String()
}

func renderAuthFailure(err error) string {
	return render.Failure("Authentication Failed", err, []string{
		"Verify the username and password are correct",
		"Check the client and system codes",
		"Ensure the API base URL is reachable",
	})
}
