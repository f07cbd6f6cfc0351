package main

import (
	"os"

	"github.com/shouni/gemini-image-edit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
