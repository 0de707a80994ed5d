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
Sdkctl calls cloud services from the command line.

Settings come from a profile file (YAML or TOML), a .env file and SDK_*
environment variables. Results are printed as JSON.

Usage:

	sdkctl [flags] <command> [arguments]

The commands are:

# regions

NAME:

	sdkctl regions - list the known regions

USAGE:

	sdkctl regions

# config

NAME:

	sdkctl config - inspect the resolved configuration

# config show

NAME:

	sdkctl config show - print the resolved profile as YAML

USAGE:

	sdkctl config show

# healthchecks

NAME:

	sdkctl healthchecks - work with HTTP monitors

# healthchecks list

NAME:

	sdkctl healthchecks list - list the HTTP monitors of a compartment

USAGE:

	sdkctl healthchecks list -compartment <id> [-sort-by <field>] [-sort-order ASC|DESC] [-limit <n>]

OPTIONS:

	--compartment id    list monitors in compartment id
	--sort-by field     sort by field
	--sort-order value  ASC or DESC
	--limit n           return at most n monitors (default: 0)
	--help, -h          show help

# healthchecks get

NAME:

	sdkctl healthchecks get - print one HTTP monitor

USAGE:

	sdkctl healthchecks get <monitor-id>

# keys

NAME:

	sdkctl keys - work with vault keys

# keys list

NAME:

	sdkctl keys list - list the keys of a compartment

USAGE:

	sdkctl keys list -compartment <id> [-protection-mode HSM|SOFTWARE] [-algorithm AES|RSA|ECDSA]

OPTIONS:

	--compartment id         list keys in compartment id
	--protection-mode mode   only keys with protection mode
	--algorithm algorithm    only keys using algorithm
	--help, -h               show help

# keys get

NAME:

	sdkctl keys get - print one key

USAGE:

	sdkctl keys get <key-id>

# runs

NAME:

	sdkctl runs - work with data flow runs

# runs get-log

NAME:

	sdkctl runs get-log - download one log file of a run

USAGE:

	sdkctl runs get-log -run <id> -name <log> [-out <file>]

DESCRIPTION:

	The log is streamed to standard output unless -out names a file.
	Log names are sent as given, without escaping.

OPTIONS:

	--run id      read logs of run id
	--name name   download the log name
	--out file    write the log to file
	--help, -h    show help
*/
package main
