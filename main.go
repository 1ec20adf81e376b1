// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/avrovalidate/avrovalidate/cmd/avrovalidate"

func main() {
	cmd.Execute()
}
