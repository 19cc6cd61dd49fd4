// Package batch reads transcription batch files. Each non-empty line holds
// one transcription, optionally followed by "= expected spelling".
package batch
