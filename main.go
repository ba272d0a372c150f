package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/deskmate/internal/deskmate/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := deskmate(); err != nil {
		logrus.Fatal(err)
	}
}

func deskmate() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
