package releasemanager

var log Logger = discardLogger{}

// SetLogger sends the update checker and model guard logs to logger.
// Nothing is logged by default; passing nil discards the logs again.
func SetLogger(logger Logger) {
	if logger == nil {
		logger = discardLogger{}
	}
	log = logger
}

// Logger is satisfied by the standard *log.Logger
type Logger interface {
	// Print arguments in the manner of fmt.Print.
	Print(v ...interface{})
	// Printf arguments in the manner of fmt.Printf.
	Printf(format string, v ...interface{})
}

type discardLogger struct{}

func (discardLogger) Print(v ...interface{})                 {}
func (discardLogger) Printf(format string, v ...interface{}) {}
