package model

import "errors"

var (
	ErrGatewayUnavailable = errors.New("payment gateway unreachable or rejected the request")
	ErrIntentNotCreatable = errors.New("booking is not in a state that allows intent creation")
)
