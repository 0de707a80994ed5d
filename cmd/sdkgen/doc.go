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

//go:generate go run -tags docgen ../doc_generate.go -cmd .

/*
Sdkgen renders Go service packages from API descriptors.

Each descriptor lists the enums, messages, unions and methods of one service.
The generated package contains typed models with Decode, ToMap, Equal and
Hash, and a client with one method per operation.

Usage:

	sdkgen <command> [arguments]

The commands are:

# generate

NAME:

	sdkgen generate - render the package for one descriptor

USAGE:

	sdkgen generate -api <file> -out <directory> [-skip <name>]... [-include <name>]...

DESCRIPTION:

	Examples:
	  sdkgen generate -api internal/services/healthchecks/api.yaml -out internal/services/healthchecks
	  sdkgen generate -api api.yaml -out out -include GetHttpMonitor

	Elements listed with -include are kept together with everything they
	reference; elements listed with -skip are removed. Only one of the two may
	be used.

OPTIONS:

	--api file                                   read the descriptor from file
	--out directory                              write the package into directory
	--skip name [ --skip name ]                  remove the element name before generating
	--include name [ --include name ]            keep only the element name and its dependencies
	--goimports                                  run goimports over the generated files (default: false)
	--year year                                  write year in the license header
	--help, -h                                   show help

GLOBAL OPTIONS:

	--verbose, -v  enable verbose logging (default: false)

# validate

NAME:

	sdkgen validate - check descriptors without generating code

USAGE:

	sdkgen validate <file>...

OPTIONS:

	--help, -h  show help

GLOBAL OPTIONS:

	--verbose, -v  enable verbose logging (default: false)
*/
package main
