package utils

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	c := qt.New(t)

	logger, err := NewLogger("debug")
	c.Assert(err, qt.IsNil)
	c.Assert(logger.Core().Enabled(zapcore.DebugLevel), qt.IsTrue)

	logger, err = NewLogger("")
	c.Assert(err, qt.IsNil)
	c.Assert(logger.Core().Enabled(zapcore.DebugLevel), qt.IsFalse)
	c.Assert(logger.Core().Enabled(zapcore.InfoLevel), qt.IsTrue)

	_, err = NewLogger("chatty")
	c.Assert(err, qt.ErrorMatches, `\[NewLogger\] bad level: chatty.*`)
}
