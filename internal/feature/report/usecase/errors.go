package usecase

import "errors"

// ErrInvalidPeriod は未知の期間指定を表します。
var ErrInvalidPeriod = errors.New("period must be all, daily, weekly or monthly")
