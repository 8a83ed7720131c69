package main

import "github.com/cmmoran/luastubgen/cmd"

func main() {
	cmd.Execute()
}
