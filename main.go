package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aymericbeaumet/fibonacci/fibonacci"
	"github.com/sirupsen/logrus"
)

const n = 10

func main() {
	w := bufio.NewWriterSize(os.Stdout, 8192)

	if err := run(w, n); err != nil {
		logrus.WithError(err).Fatal("could not write result")
	}

	if err := w.Flush(); err != nil {
		logrus.WithError(err).Fatal("could not flush stdout")
	}
}

func run(w io.Writer, n int) error {
	logrus.WithField("n", n).Debug("computing fibonacci")

	_, err := fmt.Fprintf(w, "Fibonacci of %d is %d\n", n, fibonacci.Fibonacci(n))
	return err
}
