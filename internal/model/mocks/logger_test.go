package mocks

import "testing"

func TestLogger(t *testing.T) {
	t.Run("Debug", func(t *testing.T) {
		var called bool
		lo := &Logger{
			MockDebug: func(message string) {
				called = true
			},
		}
		lo.Debug("fetching quote")
		if !called {
			t.Fatal("not called")
		}
	})

	t.Run("Debugf", func(t *testing.T) {
		var called bool
		lo := &Logger{
			MockDebugf: func(message string, v ...interface{}) {
				called = true
			},
		}
		lo.Debugf("fetching quote", 1, 2, 3, 4)
		if !called {
			t.Fatal("not called")
		}
	})

	t.Run("Info", func(t *testing.T) {
		var called bool
		lo := &Logger{
			MockInfo: func(message string) {
				called = true
			},
		}
		lo.Info("fetching quote")
		if !called {
			t.Fatal("not called")
		}
	})

	t.Run("Infof", func(t *testing.T) {
		var called bool
		lo := &Logger{
			MockInfof: func(message string, v ...interface{}) {
				called = true
			},
		}
		lo.Infof("fetching quote", 1, 2, 3, 4)
		if !called {
			t.Fatal("not called")
		}
	})

	t.Run("Warn", func(t *testing.T) {
		var called bool
		lo := &Logger{
			MockWarn: func(message string) {
				called = true
			},
		}
		lo.Warn("fetching quote")
		if !called {
			t.Fatal("not called")
		}
	})

	t.Run("Warnf", func(t *testing.T) {
		var called bool
		lo := &Logger{
			MockWarnf: func(message string, v ...interface{}) {
				called = true
			},
		}
		lo.Warnf("fetching quote", 1, 2, 3, 4)
		if !called {
			t.Fatal("not called")
		}
	})
}
