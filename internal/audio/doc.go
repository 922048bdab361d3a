// Package audio adapts external text-to-speech capabilities behind one
// Provider contract. OpenAI TTS is the default backend, espeak-ng serves
// as a local alternative, and wrappers add fallback chaining and a
// circuit breaker around the remote calls.
package audio
