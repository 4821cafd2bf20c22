package main

import "github.com/masmgr/churnstats-go/cmd"

func main() {
	cmd.Run()
}
