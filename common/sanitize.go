// Package common provides the pieces every diagram store shares: text
// sanitization and the title/description metadata block.
package common

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vellum-dev/vellum/config"
)

// Policies are built once; Sanitize is called on every piece of user text.
var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// Sanitize cleans one fragment of diagram text according to the configured
// security level. Invalid UTF-8 and NUL bytes are always removed; what markup
// survives depends on the level:
//
//	strict      all markup stripped
//	antiscript  formatting kept, scripts and event handlers stripped
//	loose       text passed through as written
//
// A nil config sanitizes at the strict level.
func Sanitize(text string, cfg *config.Config) string {
	if text == "" {
		return text
	}
	cleaned := strings.ToValidUTF8(text, "")
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")

	level := config.SecurityStrict
	if cfg != nil && cfg.SecurityLevel != "" {
		level = cfg.SecurityLevel
	}
	switch level {
	case config.SecurityLoose:
		return cleaned
	case config.SecurityAntiscript:
		return ugcPolicy.Sanitize(cleaned)
	default:
		return strictPolicy.Sanitize(cleaned)
	}
}
