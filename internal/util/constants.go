package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Upload constants.
const (
	MimeImage = "image/"
	MimeAudio = "audio/"
)

var (
	AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}
	AllowedAudioExtensions = []string{".mp3", ".ogg", ".wav", ".m4a", ".aac", ".webm"}
)
