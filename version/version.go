package version

var (
	// Version shows the last byteoffset binary version released.
	Version = "1.0.0-alpha.0"
)
