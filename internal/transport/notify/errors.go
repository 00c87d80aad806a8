package notify

import "errors"

var ErrNoRequests = errors.New("no requests")
