package consts

// Output container extensions.
const (
	ExtMP4 = ".mp4"
	ExtMOV = ".mov"
)

// AllVidExtensions are the video file extensions accepted as encode input.
var AllVidExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".mts":  true,
	".m2ts": true,
	".webm": true,
}
