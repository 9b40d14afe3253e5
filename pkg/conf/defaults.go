package conf

import "time"

const (
	// Timeout acts as the general request Timeout default value
	Timeout = 30 * time.Second

	// DavEndpoint is the path prefix of the Nextcloud user WebDAV root
	DavEndpoint = "/remote.php/dav/files/"

	// File size constants for display formatting

	BytesPerKB = 1024
	BytesPerMB = 1024 * 1024
	BytesPerGB = 1024 * 1024 * 1024

	// TransferBufferSize is the buffer size for file transfers (32KB)
	TransferBufferSize = 32 * 1024

	// DefaultHistorySize is the default maximum size for command history
	DefaultHistorySize = 100

	// Terminal size

	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24

	// SessionFile is the session file name under the davsh home
	SessionFile = "session.json"

	// SessionKeyFile is the session sealing key file name under the davsh home
	SessionKeyFile = "session.key"
)
