// Package models lists the OpenAI chat models available to the configured
// API key, so a model for --word transcription lookups can be chosen.
package models
