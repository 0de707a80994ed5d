// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package license provides the license header written at the top of
// generated files.
package license

import "strings"

const header = ` Copyright %YEAR% Google LLC

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.`

// LicenseHeader returns the Apache 2.0 header for year, one line per element.
// Non-empty lines start with a space so callers can prefix a comment marker.
func LicenseHeader(year string) []string {
	return strings.Split(strings.ReplaceAll(header, "%YEAR%", year), "\n")
}

// Comment returns the header as a block of comment lines using marker, such
// as "//" or "#", followed by a blank line.
func Comment(marker, year string) string {
	var b strings.Builder
	for _, line := range LicenseHeader(year) {
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
