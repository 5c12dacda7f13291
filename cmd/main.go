// cmd/main.go
package main

import cmd "github.com/fhirfix/fhirfix/cmd/fhirfix"

// main starts the fhirfix CLI application by delegating to the cobra
// root command defined in the fhirfix package.
func main() {
	cmd.Execute()
}
