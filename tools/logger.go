package tools

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func InitLogger() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   false,
		PadLevelText:    true,
	})
	Log.SetLevel(logrus.InfoLevel) // or DebugLevel
}

func LogRunSummary(total, created, skipped, failed int) {
	Log.Infof("[sync] ous=%d created=%d skipped=%d failed=%d", total, created, skipped, failed)
}
