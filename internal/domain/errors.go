package domain

import "errors"

var ErrPriceNotFound = errors.New("price not found")
