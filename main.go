// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/setsmatcher/setsmatcher/cmd/setsmatcher"

func main() {
	cmd.Execute()
}
