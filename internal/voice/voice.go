// Package voice declares the speech interfaces the assistant can sit
// behind. Real STT/TTS integrations plug in here; the bundled
// implementations are no-ops that keep the tool dependency-light.
package voice

// Transcription is the result of speech-to-text.
type Transcription struct {
	Text       string
	Confidence *float64
}

// Transcriber turns raw audio into text.
type Transcriber interface {
	Transcribe(audio []byte) (Transcription, error)
}

// Synthesizer turns text into spoken audio.
type Synthesizer interface {
	Synthesize(text string) ([]byte, error)
}

// NoopTranscriber implements Transcriber with empty results.
type NoopTranscriber struct{}

func (NoopTranscriber) Transcribe([]byte) (Transcription, error) {
	return Transcription{}, nil
}

// NoopSynthesizer implements Synthesizer with no audio.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Synthesize(string) ([]byte, error) {
	return nil, nil
}
