package mode

import "errors"

// ErrInvalidModeSpec is an error that occurs when the desired mode is given
// as a value that is neither an integer nor octal text.
var ErrInvalidModeSpec = errors.New("mode must be an integer or octal string")
