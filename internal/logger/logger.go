package logger

import (
	"go.uber.org/zap"
)

// Init builds the global zap logger. Handlers and services log through zap.L().
func Init(ginMode string) error {
	var (
		l   *zap.Logger
		err error
	)

	if ginMode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)
	return nil
}
