package main

import "github.com/jveigel/brachistochrone-calculators/cmd"

func main() {
	cmd.Execute()
}
