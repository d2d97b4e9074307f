package mls

import goLog "log"

// Logger is the sink for lifecycle messages emitted by ambient
// infrastructure built around the core (currently just leafstore). The
// core algorithms themselves never log.
type Logger interface {
	Logf(format string, a ...interface{})
}

type dummyLogger struct{}

func (*dummyLogger) Logf(format string, a ...interface{}) {}

type stdlibLogger struct{}

func (*stdlibLogger) Logf(format string, a ...interface{}) { goLog.Printf(format, a...) }

var log Logger = &dummyLogger{}

// EnableLogging routes lifecycle messages to the standard log package.
func EnableLogging() {
	log = &stdlibLogger{}
}

// SetLogger installs logger as the sink for lifecycle messages. Passing
// nil disables logging.
func SetLogger(logger Logger) {
	if logger == nil {
		log = &dummyLogger{}
		return
	}
	log = logger
}

// Logf emits a lifecycle message through the installed Logger. It is
// exported for ambient infrastructure built around the core, such as
// leafstore, to share the one logging sink.
func Logf(format string, a ...interface{}) {
	log.Logf(format, a...)
}
