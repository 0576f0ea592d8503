// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/opensbom-generator/composerjson/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
