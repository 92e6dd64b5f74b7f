// Package llm talks to hosted language models (Gemini, OpenAI, Anthropic)
// through a single Provider interface that returns schema-validated JSON.
// TopicGenerator builds on it to suggest study topics for a subject.
package llm
