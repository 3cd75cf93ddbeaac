package model

const (
	// MaxUploadMB is surfaced to the user in slot hints and rejection messages.
	MaxUploadMB    = 5
	MaxUploadBytes = MaxUploadMB * 1024 * 1024
)

// AcceptedExtensions is a pre-flight hint only; the remote service is the
// authority on what it can actually parse.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

// UploadedDocument is one file slot on the dashboard, held in memory until it
// is shipped to the analysis endpoint.
type UploadedDocument struct {
	Name      string
	SizeBytes int64
	Data      []byte
}

// TooLarge reports whether the document violates the upload size limit.
func (d *UploadedDocument) TooLarge() bool {
	return d.SizeBytes > MaxUploadBytes
}
