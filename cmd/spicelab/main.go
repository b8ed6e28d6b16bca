package main

import "github.com/edp1096/spicelab/cmd/spicelab/cmd"

func main() {
	cmd.Execute()
}
