package translate

// Request is a single translation request. SourceLang is a language code or
// the auto-detect sentinel; TargetLang is always a concrete code.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
}

// Result is the outcome of a successful remote call. DetectedSourceLang is the
// concrete source code: either echoed from the request or identified by the
// service when the request asked for auto-detection.
type Result struct {
	TranslatedText     string
	DetectedSourceLang string
}

// responsePayload is the JSON object the model is instructed to return.
type responsePayload struct {
	TranslatedText     string `json:"translated_text"`
	DetectedSourceLang string `json:"detected_source_lang"`
}
