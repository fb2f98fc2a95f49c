package common

import "errors"

var UnsupportedSecurity = errors.New("unsupported security type")
var InvalidStrike = errors.New("strike not representable")
var UnparseableTicker = errors.New("unparseable ticker")
var LookupFailed = errors.New("option lookup failed")

var AlreadyConnected = errors.New("already connected")
var NotConnected = errors.New("not connected")
var ConnectionFailed = errors.New("connection failed")
var RequestTimeout = errors.New("request timed out")
