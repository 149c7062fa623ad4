package render

import "errors"

var ErrUnknownWidget = errors.New("render: unknown widget")
