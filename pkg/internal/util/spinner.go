// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

var working = spinner.New(
	spinner.CharSets[14], 100*time.Millisecond,
	spinner.WithWriter(os.Stderr),
	spinner.WithColor("yellow"),
)

// StartSpinner starts the ~working~ spinner. The spinner is kept quiet when
// tracing, since it would only garble the trace output.
func StartSpinner() {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	working.Start()
}

// PauseSpinner stops the ~working~ spinner if it is running.
func PauseSpinner() {
	working.Stop()
}

// Work runs the given task with the ~working~ spinner going. A failed task
// is reported along with its description.
func Work(description string, task func() error) error {
	logrus.Debugf("\x1b[34m%s\x1b[0m", description)

	StartSpinner()
	err := task()
	PauseSpinner()

	if err != nil {
		return fmt.Errorf("%s: %w", description, err)
	}

	return nil
}
