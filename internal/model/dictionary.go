package model

// DictionarySource records where the loaded word list came from
type DictionarySource string

const (
	DictionarySourceNone     DictionarySource = ""
	DictionarySourceFile     DictionarySource = "file"
	DictionarySourceStorage  DictionarySource = "storage"
	DictionarySourceFallback DictionarySource = "fallback"
	DictionarySourceWords    DictionarySource = "words"
)

// FallbackWords is the built-in list used when no dictionary can be read
var FallbackWords = []string{"flight", "airline", "airport", "boarding", "ticket"}
