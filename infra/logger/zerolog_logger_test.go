package logger

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		env, level string
		want       zerolog.Level
	}{
		{"dev", "", zerolog.DebugLevel},
		{"", "", zerolog.InfoLevel},
		{"prod", "debug", zerolog.DebugLevel},
		{"dev", "warn", zerolog.WarnLevel},
		{"", "ERROR", zerolog.ErrorLevel},
		{"prod", "bogus", zerolog.InfoLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, levelFor(c.env, c.level), "env=%q level=%q", c.env, c.level)
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debugf("ignored")
	l.Infof("ignored")
}
