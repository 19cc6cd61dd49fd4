// Package phonetic fetches IPA transcriptions of Russian words from OpenAI's
// chat models. Responses are normalized to the symbol set accepted by the
// ipa package, and calls go through a circuit breaker so that a failing API
// does not stall a whole batch.
package phonetic
