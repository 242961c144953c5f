package main

import (
	"github.com/yaptide/activetarget/cli"
)

func main() {
	cli.Launch()
}
