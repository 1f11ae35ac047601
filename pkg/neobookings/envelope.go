package neobookings

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultLanguage is used when a tool is invoked without a language argument.
const DefaultLanguage = "es"

// Languages are the language codes the API accepts.
var Languages = []string{"es", "en", "fr", "de", "it", "pt"}

// ValidLanguage reports whether lang is one of the accepted language codes.
func ValidLanguage(lang string) bool {
	return slices.Contains(Languages, lang)
}

// Envelope is the request metadata block embedded in every outbound payload.
// A fresh one is generated per tool invocation; it is never reused or derived
// from caller input.
type Envelope struct {
	RequestID string `json:"RequestId"`
	Timestamp string `json:"Timestamp"`
	Language  string `json:"Language"`
}

// NewEnvelope returns an Envelope with a new request id and the current UTC
// timestamp. An empty language falls back to DefaultLanguage.
func NewEnvelope(language string) Envelope {
	if language == "" {
		language = DefaultLanguage
	}
	return Envelope{
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z",
		Language:  language,
	}
}
