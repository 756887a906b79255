package cli

import (
	"github.com/sirupsen/logrus"
)

// consoleContext is the CLI's hosting execution context: attached messages
// become structured log lines and the run verdict is recorded for the exit
// code.
type consoleContext struct {
	log *logrus.Entry

	failed  bool
	verdict string
}

func newConsoleContext(runID string) *consoleContext {
	return &consoleContext{
		log: logrus.WithField("run_id", runID),
	}
}

func (c *consoleContext) AttachError(category string, objectIDs []string, message string) {
	c.log.WithFields(logrus.Fields{
		"category": category,
		"objects":  len(objectIDs),
	}).Error(message)
}

func (c *consoleContext) AttachInfo(category string, objectIDs []string, message string) {
	c.log.WithFields(logrus.Fields{
		"category": category,
		"objects":  len(objectIDs),
	}).Info(message)
}

func (c *consoleContext) MarkRunSuccess(message string) {
	c.verdict = message
	c.log.Info(message)
}

func (c *consoleContext) MarkRunFailed(message string) {
	c.failed = true
	c.verdict = message
	c.log.Error(message)
}
