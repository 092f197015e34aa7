// This program provides the interactive menu front end for the chain.
// All it does is parse text commands and hand them to the state API.
package main

import "github.com/minichain/minichain/app/cli/cmd"

func main() {
	cmd.Execute()
}
