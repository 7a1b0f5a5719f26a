/*
Command gcamgen compiles a machining job into a G-code program.

	gcamgen generate job.yaml -o job.nc
	gcamgen validate job.yaml
	gcamgen bounds job.yaml

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import "github.com/npillmayer/gcam/cmd/gcamgen/cmd"

func main() {
	cmd.Execute()
}
