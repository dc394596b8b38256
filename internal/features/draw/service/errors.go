package service

import "errors"

var ErrNotFound = errors.New("draw not found")
