package main

import "github.com/salariedindividual/retirement-calculator/cmd"

func main() {
	cmd.Execute()
}
