package main

import "github.com/jmp-0x7C0/swift-bridge/cmd"

func main() {
	cmd.Execute()
}
