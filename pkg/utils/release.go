//go:build !debug
// +build !debug

package utils

import "github.com/sirupsen/logrus"

const defaultLevel = logrus.InfoLevel

func Debug(_ string, _ ...interface{}) {}
func Log(fmt string, args ...interface{}) {
	Logger.Infof(fmt, args...)
}
