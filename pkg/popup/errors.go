package popup

import "errors"

// ErrUnknownWindow is returned by Lookup for names without a registered window.
var ErrUnknownWindow = errors.New("unknown popup window")
