// Package markdown renders user supplied ticket and comment text into
// sanitized HTML for clients that prefer not to render markdown themselves.
package markdown

import (
	"bytes"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	ToHTML(markdown string) (string, error)
	// RenderSafe never fails: on conversion errors it falls back to the
	// escaped source text.
	RenderSafe(markdown string) string
}

type service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "span")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &service{md: md, policy: policy}
}

func (s *service) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}

func (s *service) RenderSafe(markdown string) string {
	out, err := s.ToHTML(markdown)
	if err != nil {
		return html.EscapeString(markdown)
	}
	return out
}
