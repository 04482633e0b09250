package models

// PageIdentity holds who-is-this-page metadata extracted from the first
// fetched sample. Informational only: it feeds history listings and
// interpretation text, never the semantic score.
type PageIdentity struct {
	Title                  string  `json:"title,omitempty" yaml:"title,omitempty"`
	Excerpt                string  `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	SiteName               string  `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Author                 string  `json:"author,omitempty" yaml:"author,omitempty"`
	DeclaredLang           string  `json:"declared_lang,omitempty" yaml:"declared_lang,omitempty"`
	DetectedLang           string  `json:"detected_lang,omitempty" yaml:"detected_lang,omitempty"`
	DetectedLangConfidence float64 `json:"detected_lang_confidence,omitempty" yaml:"detected_lang_confidence,omitempty"`
}
