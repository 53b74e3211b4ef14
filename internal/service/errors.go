package service

import (
	"errors"
)

var ErrUnknownScreen = errors.New("unknown screen")
