package main

import "github.com/theirongolddev/callcost/cmd"

func main() {
	cmd.Execute()
}
