package main

import (
	_ "embed"

	"github.com/haierkeys/note-crud-service/cmd"
)

//go:embed config/config.yaml
var c string

// @title Notes API
// @version 1.0.0
// @description A simple API for managing notes
// @BasePath /
func main() {
	cmd.Execute(c)
}
