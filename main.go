// SPDX-License-Identifier: MPL-2.0

package main

import cmd "arbrun-cli/cmd/arbrun"

func main() {
	cmd.Execute()
}
