package config

const (
	// MaxItemNameLength is the maximum length for folder and file names.
	// Limited to 255 to match common filesystem limits and provide
	// reasonable UX (names should be short and descriptive).
	MaxItemNameLength = 255

	// MaxUploadBytes is the maximum accepted size for a single uploaded
	// file (multipart or inline content).
	MaxUploadBytes = 10 << 20 // 10 MB

	// MaxRequestBodyBytes caps JSON request bodies. Inline file creation
	// carries content in the body, so this matches MaxUploadBytes plus
	// headroom for the JSON framing.
	MaxRequestBodyBytes = 12 << 20
)
