package ui

// Window sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 360
)

// Preview sizing
const (
	PreviewImageSize float32 = 100
)

// Status texts
const (
	StatusReady            = "Paste a link and pick a mode"
	StatusComplete         = "Download complete."
	StatusErrorFormat      = "Download Error: %s"
	StatusSummaryFormat    = "Finished: %d of %d succeeded"
	StatusEmptyInput       = "Enter a video or playlist link first"
	StatusAlreadyRunning   = "A download is already running"
	ProgressPercentFormat  = "%d%%"
	FolderButtonLabel      = "Choose folder…"
	AudioButtonLabel       = "Download Audio"
	VideoButtonLabel       = "Download Video"
	URLPlaceholder         = "YouTube video or playlist URL"
	DefaultFolderIndicator = "Default folders"
)
