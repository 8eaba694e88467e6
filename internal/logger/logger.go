package logger

import (
	"io"
	"log"
	"os"
)

const VerboseEnv = "QUIZCARD_VERBOSE"

var verbose = os.Getenv(VerboseEnv) != ""

func init() {
	if verbose {
		log.Println("[logger] verbose mode enabled")
	}
}

func New(prefix string) *log.Logger {
	return log.New(os.Stdout, prefix+" ", log.LstdFlags)
}

func NewVerboseLogger(prefix string) *log.Logger {
	if verbose {
		return New(prefix)
	}
	return log.New(io.Discard, "", 0)
}
