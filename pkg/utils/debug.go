//go:build debug
// +build debug

package utils

import "github.com/sirupsen/logrus"

const defaultLevel = logrus.DebugLevel

func Debug(fmt string, args ...interface{}) {
	Logger.Debugf(fmt, args...)
}

func Log(fmt string, args ...interface{}) {
	Logger.Infof(fmt, args...)
}
