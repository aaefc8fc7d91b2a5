// Package agent contains the task executor (Handle) that wraps every
// registered agent with uniform metrics, lifecycle and error bookkeeping, the
// embeddable Base supplying identity plumbing, and the stock agents of the
// learning platform: LanguageAgent (detection, translation, localization) and
// SpeechAgent (speech-to-text, text-to-speech and the composed voice flows).
package agent
