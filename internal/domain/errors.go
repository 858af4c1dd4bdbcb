package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrNotEnoughShares  = errors.New("not enough shares")
	ErrSymbolNotFound   = errors.New("symbol not found")
)
