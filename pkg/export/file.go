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

package export

import (
	"io"
	"os"

	"laptudirm.com/x/deskmate/pkg/internal/util"
)

// Save writes a workbook into the named file. The file is only replaced
// once the whole workbook has been written.
func Save(path string, write func(io.Writer) error) error {
	return util.Work("export "+path, func() error {
		temp := path + ".tmp"

		file, err := os.Create(temp)
		if err != nil {
			return err
		}

		err = write(file)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}

		if err != nil {
			_ = os.Remove(temp)
			return err
		}

		return os.Rename(temp, path)
	})
}
