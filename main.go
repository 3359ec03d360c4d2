package main

import "github.com/kmehta-dev/w2-review-agent/cmd"

func main() {
	cmd.Execute()
}
